package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/deck"
	"github.com/arcanaland/highlow/internal/render"
	"github.com/arcanaland/highlow/internal/validator"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 54-card deck",
	Long:  `Commands for listing and checking the deck used by the game.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards of a freshly built deck",
	Long: `List prints every card of a newly built deck with its code, face and value.
Cards are listed in canonical order (hearts, diamonds, clubs, spades; 2 to ace;
then the red and black joker) unless --shuffle is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		shuffle, _ := cmd.Flags().GetBool("shuffle")
		noColor, _ := cmd.Flags().GetBool("no-color")
		b := builderFromFlags(cmd)

		cards := b.Build()
		if shuffle {
			cards = b.Shuffle(cards)
		}

		r := render.New(cmd.OutOrStdout(), render.Options{
			Color: useColor(cfg, noColor, render.IsTerminal(os.Stdout)),
		})
		for i, c := range cards {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, r.CardLine(c))
		}
		return nil
	},
}

// deckCheckCmd represents the deck check command
var deckCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Build many decks and check them",
	Long: `Check builds --count decks, validates the composition of each one and reports
how often each joker came out high. Both jokers should be high about half the time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			return fmt.Errorf("--count must be positive")
		}
		b := builderFromFlags(cmd)

		high := map[card.JokerVariant]int{}
		invalid := 0
		for i := 0; i < count; i++ {
			cards := b.BuildShuffled()
			results := validator.Validate(cards)
			if !results.Valid() {
				invalid++
				fmt.Fprintf(cmd.OutOrStdout(), "Deck %d: %d validation errors\n", i+1, len(results.Errors))
				for j, err := range results.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", j+1, err)
				}
			}
			for _, c := range cards {
				if c.IsHigh() {
					high[c.Variant()]++
				}
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Decks built: %d\n", count)
		for _, v := range []card.JokerVariant{card.RedJoker, card.BlackJoker} {
			fmt.Fprintf(cmd.OutOrStdout(), "%s joker high: %d (%.1f%%)\n",
				v, high[v], 100*float64(high[v])/float64(count))
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d decks failed validation", invalid, count)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ All decks are valid.")
		return nil
	},
}

// builderFromFlags returns a seeded builder when --seed is set
func builderFromFlags(cmd *cobra.Command) *deck.Builder {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		return deck.NewBuilder(nil)
	}
	return deck.NewSeededBuilder(seed)
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckCheckCmd)

	deckCmd.PersistentFlags().Uint64("seed", 0, "Seed for deck building and shuffling (0 for random)")
	deckListCmd.Flags().Bool("shuffle", false, "Shuffle the deck before listing it")
	deckListCmd.Flags().Bool("no-color", false, "Disable colored output")
	deckCheckCmd.Flags().Int("count", 100, "Number of decks to build")
}
