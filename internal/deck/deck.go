package deck

import (
	"math/rand/v2"

	"github.com/arcanaland/highlow/internal/card"
)

// Size is the number of cards in a full deck: 52 standard cards plus two jokers
const Size = 54

// Source is the random source used for joker values and shuffling.
// *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n)
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Builder builds and shuffles decks from a single random source
type Builder struct {
	src Source
}

// NewBuilder creates a Builder drawing from src. A nil src uses the
// process-wide generator.
func NewBuilder(src Source) *Builder {
	if src == nil {
		src = globalSource{}
	}
	return &Builder{src: src}
}

// NewSeededBuilder creates a Builder with a deterministic PCG source
func NewSeededBuilder(seed uint64) *Builder {
	return NewBuilder(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

var defaultBuilder = NewBuilder(nil)

// Canonical returns the 52 standard cards, suit-major in the order hearts,
// diamonds, clubs, spades, with ranks ascending from 2 to ace.
func Canonical() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.NewStandard(suit, rank))
		}
	}
	return cards
}

// Build returns the canonical 52 cards followed by the red joker and then the
// black joker. Each joker is made high or low by its own coin flip.
func (b *Builder) Build() []card.Card {
	cards := Canonical()
	cards = append(cards, card.NewJoker(card.RedJoker, b.src.IntN(2) == 1))
	cards = append(cards, card.NewJoker(card.BlackJoker, b.src.IntN(2) == 1))
	return cards
}

// Shuffle returns a uniformly random permutation of cards. The input slice is
// not modified and the jokers keep the values they were built with.
func (b *Builder) Shuffle(cards []card.Card) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)

	// Fisher-Yates
	for i := len(shuffled) - 1; i > 0; i-- {
		j := b.src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// BuildShuffled builds a fresh deck and shuffles it
func (b *Builder) BuildShuffled() []card.Card {
	return b.Shuffle(b.Build())
}

// Build builds a deck using the process-wide generator
func Build() []card.Card {
	return defaultBuilder.Build()
}

// Shuffle shuffles cards using the process-wide generator
func Shuffle(cards []card.Card) []card.Card {
	return defaultBuilder.Shuffle(cards)
}

// BuildShuffled builds and shuffles a deck using the process-wide generator
func BuildShuffled() []card.Card {
	return defaultBuilder.BuildShuffled()
}
