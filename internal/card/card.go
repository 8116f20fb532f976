package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four standard suits
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in canonical deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	}
	return fmt.Sprintf("suit(%d)", uint8(s))
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Letter returns the single-letter suit code used in card codes
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	}
	return "?"
}

// Rank is a standard card rank. Its numeric value is its comparison value.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists the ranks in ascending order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", uint8(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	}
	return fmt.Sprintf("rank(%d)", uint8(r))
}

// JokerVariant distinguishes the two jokers. It only affects display.
type JokerVariant uint8

const (
	RedJoker JokerVariant = iota
	BlackJoker
)

func (v JokerVariant) String() string {
	if v == RedJoker {
		return "red"
	}
	return "black"
}

// Color is the display color of a card
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Kind tags which variant a Card holds
type Kind uint8

const (
	Standard Kind = iota
	Joker
)

// Joker values, fixed when the joker is created
const (
	JokerLow  = 0
	JokerHigh = 15
)

// Card is either a standard card (suit and rank) or a joker (variant and a
// fixed high/low value). Card is a comparable value; the zero value is not a
// valid card, use NewStandard or NewJoker.
type Card struct {
	kind    Kind
	suit    Suit
	rank    Rank
	variant JokerVariant
	high    bool
}

// NewStandard creates a standard card
func NewStandard(suit Suit, rank Rank) Card {
	return Card{kind: Standard, suit: suit, rank: rank}
}

// NewJoker creates a joker whose value is JokerHigh or JokerLow
func NewJoker(variant JokerVariant, high bool) Card {
	return Card{kind: Joker, variant: variant, high: high}
}

// Kind reports whether the card is a standard card or a joker
func (c Card) Kind() Kind { return c.kind }

// Suit is only meaningful for standard cards
func (c Card) Suit() Suit { return c.suit }

// Rank is only meaningful for standard cards
func (c Card) Rank() Rank { return c.rank }

// Variant is only meaningful for jokers
func (c Card) Variant() JokerVariant { return c.variant }

func (c Card) IsJoker() bool { return c.kind == Joker }

// IsHigh reports whether the card is a high joker
func (c Card) IsHigh() bool { return c.kind == Joker && c.high }

// Value returns the comparison value: 2-14 for standard cards, 0 or 15 for jokers
func (c Card) Value() int {
	switch c.kind {
	case Standard:
		return int(c.rank)
	case Joker:
		if c.high {
			return JokerHigh
		}
		return JokerLow
	default:
		panic(fmt.Sprintf("card: unknown kind %d", c.kind))
	}
}

// Compare returns a positive number if a outranks b, negative if b outranks a
// and zero when both have the same value, regardless of suit or variant.
func Compare(a, b Card) int {
	return a.Value() - b.Value()
}

// String returns the display form, e.g. "10♥" or "Joker [HIGH]"
func (c Card) String() string {
	switch c.kind {
	case Standard:
		return c.rank.String() + c.suit.Symbol()
	case Joker:
		if c.high {
			return "Joker [HIGH]"
		}
		return "Joker [LOW]"
	default:
		panic(fmt.Sprintf("card: unknown kind %d", c.kind))
	}
}

// Color returns red for hearts, diamonds and the red joker, black otherwise
func (c Card) Color() Color {
	switch c.kind {
	case Standard:
		if c.suit == Hearts || c.suit == Diamonds {
			return Red
		}
		return Black
	case Joker:
		if c.variant == RedJoker {
			return Red
		}
		return Black
	default:
		panic(fmt.Sprintf("card: unknown kind %d", c.kind))
	}
}

// Code returns the short code of the card: rank glyph + suit letter for
// standard cards (10H, QS), and RJ/BJ + H/L for jokers (RJH, BJL).
func (c Card) Code() string {
	switch c.kind {
	case Standard:
		return c.rank.String() + c.suit.Letter()
	case Joker:
		var b strings.Builder
		if c.variant == RedJoker {
			b.WriteString("RJ")
		} else {
			b.WriteString("BJ")
		}
		if c.high {
			b.WriteString("H")
		} else {
			b.WriteString("L")
		}
		return b.String()
	default:
		panic(fmt.Sprintf("card: unknown kind %d", c.kind))
	}
}
