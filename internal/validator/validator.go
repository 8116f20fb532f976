package validator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors. Warnings do not count.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards   []card.Card
	Results ValidationResults
}

func NewValidator(cards []card.Card) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

// Validate checks that the cards form exactly one full deck
func Validate(cards []card.Card) ValidationResults {
	return NewValidator(cards).Validate()
}

func (v *Validator) Validate() ValidationResults {
	v.validateSize()
	v.validateStandardCards()
	v.validateJokers()

	return v.Results
}

func (v *Validator) validateSize() {
	if len(v.Cards) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d cards, expected %d", len(v.Cards), deck.Size))
	}
}

// validateStandardCards checks that each suit and rank combination appears once
func (v *Validator) validateStandardCards() {
	seen := make(map[card.Card]int)
	perSuit := make(map[card.Suit]int)

	for _, c := range v.Cards {
		if c.IsJoker() {
			continue
		}
		seen[c]++
		perSuit[c.Suit()]++
	}

	for _, suit := range card.Suits {
		if perSuit[suit] != len(card.Ranks) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("suit %s has %d cards, expected %d", suit, perSuit[suit], len(card.Ranks)))
		}
	}

	for _, c := range deck.Canonical() {
		switch n := seen[c]; {
		case n == 0:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("missing card: %s", c))
		case n > 1:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate card: %s (x%d)", c, n))
		}
		delete(seen, c)
	}

	// Anything left is not a real card (bad suit or rank)
	unknown := make([]card.Card, 0, len(seen))
	for c := range seen {
		unknown = append(unknown, c)
	}
	slices.SortFunc(unknown, func(a, b card.Card) int {
		if n := cmp.Compare(a.Suit(), b.Suit()); n != 0 {
			return n
		}
		return cmp.Compare(a.Rank(), b.Rank())
	})
	for _, c := range unknown {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unknown card: suit %d rank %d", c.Suit(), c.Rank()))
	}
}

// validateJokers checks there is one joker of each variant and warns when
// both landed on the same side
func (v *Validator) validateJokers() {
	count := make(map[card.JokerVariant]int)
	var jokers []card.Card

	for _, c := range v.Cards {
		if !c.IsJoker() {
			continue
		}
		count[c.Variant()]++
		jokers = append(jokers, c)

		if val := c.Value(); val != card.JokerLow && val != card.JokerHigh {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s joker has value %d, expected %d or %d", c.Variant(), val, card.JokerLow, card.JokerHigh))
		}
	}

	for _, variant := range []card.JokerVariant{card.RedJoker, card.BlackJoker} {
		if count[variant] != 1 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("deck has %d %s jokers, expected 1", count[variant], variant))
		}
	}

	if len(jokers) == 2 && jokers[0].IsHigh() == jokers[1].IsHigh() {
		side := "low"
		if jokers[0].IsHigh() {
			side = "high"
		}
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("both jokers are %s", side))
	}
}
