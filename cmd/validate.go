package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [codes...]",
	Short: "Validate a list of card codes as a full deck",
	Long: `Validate checks that the given card codes form exactly one 54-card deck:
every suit and rank once, one red joker and one black joker.
Codes may be given as separate arguments or comma separated.

Examples:
  highlow validate 2H,3H,4H
  highlow validate $(highlow deck ls | awk '{print $2}')`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.ParseList(strings.Join(args, ","))
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		results := validator.Validate(cards)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ %d cards form a valid deck.\n", len(cards))
		} else {
			fmt.Fprintf(out, "❌ Deck has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
