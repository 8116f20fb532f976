package card

import (
	"fmt"
	"strings"
)

// Parse parses a card code as produced by Card.Code. Codes are case
// insensitive: "10h", "QS", "rjh" and "BJL" are all valid.
func Parse(code string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(code))

	switch s {
	case "RJH":
		return NewJoker(RedJoker, true), nil
	case "RJL":
		return NewJoker(RedJoker, false), nil
	case "BJH":
		return NewJoker(BlackJoker, true), nil
	case "BJL":
		return NewJoker(BlackJoker, false), nil
	}

	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}

	suit, ok := parseSuit(s[len(s)-1:])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card code: %q", code)
	}

	rank, ok := parseRank(s[:len(s)-1])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card code: %q", code)
	}

	return NewStandard(suit, rank), nil
}

// ParseList parses a comma separated list of card codes
func ParseList(list string) ([]Card, error) {
	var cards []Card
	for _, code := range strings.Split(list, ",") {
		if strings.TrimSpace(code) == "" {
			continue
		}
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseSuit(letter string) (Suit, bool) {
	for _, s := range Suits {
		if s.Letter() == letter {
			return s, true
		}
	}
	return 0, false
}

func parseRank(glyph string) (Rank, bool) {
	for _, r := range Ranks {
		if r.String() == glyph {
			return r, true
		}
	}
	return 0, false
}
