package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/deck"
)

const (
	// TotalCards is the number of cards revealed in a complete game
	TotalCards = deck.Size
	// MaxScore is reached by clearing the deck; the first card is free
	MaxScore = TotalCards - 1
)

var (
	// ErrInvalidState is returned when guessing outside a game in progress
	ErrInvalidState = errors.New("game is not in playing state")
	// ErrDeckExhausted is returned when guessing with no cards left to draw
	ErrDeckExhausted = errors.New("no cards remaining in deck")
	// ErrDeckConstruction is returned when a game is started from an empty deck
	ErrDeckConstruction = errors.New("failed to create deck")
	// ErrInvalidGuess is returned for a guess that is neither higher nor lower
	ErrInvalidGuess = errors.New("invalid guess")
)

// Status is the lifecycle stage of a game
type Status uint8

const (
	Idle Status = iota
	Playing
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Terminal reports whether no further guesses are accepted
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Guess is the player's prediction for the next card
type Guess uint8

const (
	Higher Guess = iota
	Lower
)

func (g Guess) String() string {
	switch g {
	case Higher:
		return "higher"
	case Lower:
		return "lower"
	}
	return fmt.Sprintf("guess(%d)", uint8(g))
}

// ParseGuess accepts "h", "higher", "+", "l", "lower" and "-" in any case
func ParseGuess(s string) (Guess, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "higher", "+":
		return Higher, nil
	case "l", "lower", "-":
		return Lower, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
}

// State is an immutable snapshot of a game. Every transition returns a new
// State; the remaining-deck slice is shared between snapshots and never
// written to.
type State struct {
	deck        []card.Card
	current     card.Card
	hasCurrent  bool
	score       int
	bestScore   int
	status      Status
	cardsPlayed int
}

// Result is the outcome of a single guess
type Result struct {
	Correct bool
	Card    card.Card // the card that was revealed
	State   State
}

// NewGame returns an idle state carrying bestScore forward
func NewGame(bestScore int) State {
	return State{
		bestScore: bestScore,
		status:    Idle,
	}
}

// Start shuffles a freshly built deck and reveals its first card
func Start(previousBest int) (State, error) {
	return StartWith(deck.BuildShuffled(), previousBest)
}

// StartWith starts a game that draws cards in the given order. The first card
// is revealed immediately. cards is copied.
func StartWith(cards []card.Card, previousBest int) (State, error) {
	if len(cards) == 0 {
		return State{}, ErrDeckConstruction
	}

	remaining := make([]card.Card, len(cards)-1)
	copy(remaining, cards[1:])

	return State{
		deck:        remaining,
		current:     cards[0],
		hasCurrent:  true,
		score:       0,
		bestScore:   previousBest,
		status:      Playing,
		cardsPlayed: 1,
	}, nil
}

// Play resolves a guess against the next card in the deck. A tie is always
// correct. s is left untouched; on error the zero Result is returned.
func Play(s State, g Guess) (Result, error) {
	if s.status != Playing || !s.hasCurrent {
		return Result{}, fmt.Errorf("%w (status %s)", ErrInvalidState, s.status)
	}
	if len(s.deck) == 0 {
		return Result{}, ErrDeckExhausted
	}
	if g != Higher && g != Lower {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidGuess, g)
	}

	next := s.deck[0]
	cmp := card.Compare(next, s.current)

	var correct bool
	switch {
	case cmp == 0:
		correct = true
	case g == Higher:
		correct = cmp > 0
	default:
		correct = cmp < 0
	}

	rest := s.deck[1:]
	score := s.score
	if correct {
		score++
	}

	var status Status
	switch {
	case !correct:
		status = Lost
	case len(rest) == 0:
		status = Won
	default:
		status = Playing
	}

	return Result{
		Correct: correct,
		Card:    next,
		State: State{
			deck:        rest,
			current:     next,
			hasCurrent:  true,
			score:       score,
			bestScore:   max(s.bestScore, score),
			status:      status,
			cardsPlayed: s.cardsPlayed + 1,
		},
	}, nil
}

// Deck returns a copy of the cards that have not been revealed yet
func (s State) Deck() []card.Card {
	out := make([]card.Card, len(s.deck))
	copy(out, s.deck)
	return out
}

// Current returns the most recently revealed card, if any
func (s State) Current() (card.Card, bool) {
	return s.current, s.hasCurrent
}

func (s State) Score() int { return s.score }

// BestScore is the highest score seen, including previous games
func (s State) BestScore() int { return s.bestScore }

func (s State) Status() Status { return s.status }

// CardsPlayed counts revealed cards, including the current one
func (s State) CardsPlayed() int { return s.cardsPlayed }

// Remaining returns the number of cards left to draw
func (s State) Remaining() int {
	return len(s.deck)
}

// IsTerminal reports whether the game has been won or lost
func (s State) IsTerminal() bool {
	return s.status.Terminal()
}

// Progress returns the share of the deck revealed so far as a whole
// percentage, rounded half up.
func (s State) Progress() int {
	return (s.cardsPlayed*100 + TotalCards/2) / TotalCards
}
