package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "highlow",
	Short: "Higher or Lower card game for the terminal",
	Long: `Highlow is a terminal card game. A card is shown from a shuffled 54-card deck
(52 standard cards and two jokers) and you guess whether the next card is higher or
lower. Equal values always count as correct. Each joker is secretly high (above the
ace) or low (below the two), decided when the deck is built.

Clear all 54 cards for a perfect score of 53.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
