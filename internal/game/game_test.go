package game

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/deck"
)

func std(s card.Suit, r card.Rank) card.Card { return card.NewStandard(s, r) }

// playingState builds a game in progress showing current with next still to draw
func playingState(current card.Card, next []card.Card, score, best int) State {
	return State{
		deck:        next,
		current:     current,
		hasCurrent:  true,
		score:       score,
		bestScore:   best,
		status:      Playing,
		cardsPlayed: 1,
	}
}

func TestConstants(t *testing.T) {
	if TotalCards != 54 {
		t.Errorf("Expected TotalCards 54, got %d", TotalCards)
	}
	if MaxScore != 53 {
		t.Errorf("Expected MaxScore 53, got %d", MaxScore)
	}
}

func TestNewGame(t *testing.T) {
	s := NewGame(25)
	if s.Status() != Idle {
		t.Errorf("Expected idle, got %s", s.Status())
	}
	if s.Remaining() != 0 || s.Score() != 0 || s.CardsPlayed() != 0 {
		t.Errorf("Expected empty idle state, got remaining=%d score=%d played=%d", s.Remaining(), s.Score(), s.CardsPlayed())
	}
	if _, ok := s.Current(); ok {
		t.Error("Expected no current card")
	}
	if s.BestScore() != 25 {
		t.Errorf("Expected best score 25, got %d", s.BestScore())
	}
	if s.Progress() != 0 {
		t.Errorf("Expected progress 0, got %d", s.Progress())
	}
	if s.IsTerminal() {
		t.Error("Idle state is not terminal")
	}
}

func TestStart(t *testing.T) {
	s, err := Start(42)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Status() != Playing {
		t.Errorf("Expected playing, got %s", s.Status())
	}
	if _, ok := s.Current(); !ok {
		t.Error("Expected a current card")
	}
	if s.CardsPlayed() != 1 {
		t.Errorf("Expected 1 card played, got %d", s.CardsPlayed())
	}
	if s.Remaining() != 53 {
		t.Errorf("Expected 53 remaining, got %d", s.Remaining())
	}
	if s.Score() != 0 || s.BestScore() != 42 {
		t.Errorf("Expected score 0 best 42, got %d/%d", s.Score(), s.BestScore())
	}
	if s.Progress() != 2 {
		t.Errorf("Expected progress 2, got %d", s.Progress())
	}
}

func TestStartWithEmptyDeck(t *testing.T) {
	if _, err := StartWith(nil, 0); !errors.Is(err, ErrDeckConstruction) {
		t.Errorf("Expected ErrDeckConstruction, got %v", err)
	}
}

func TestStartWithCopiesInput(t *testing.T) {
	cards := []card.Card{std(card.Spades, card.Two), std(card.Hearts, card.Ten)}
	s, err := StartWith(cards, 0)
	if err != nil {
		t.Fatalf("StartWith failed: %v", err)
	}
	cards[1] = std(card.Clubs, card.Three)
	if got := s.Deck()[0]; got != std(card.Hearts, card.Ten) {
		t.Errorf("State observed caller mutation: %s", got)
	}
}

func TestPlayCorrectAndIncorrect(t *testing.T) {
	five := std(card.Hearts, card.Five)
	ten := std(card.Spades, card.Ten)
	king := std(card.Hearts, card.King)
	three := std(card.Spades, card.Three)
	filler := std(card.Clubs, card.Seven)

	tests := []struct {
		name    string
		current card.Card
		next    card.Card
		guess   Guess
		correct bool
	}{
		{"higher on higher", five, ten, Higher, true},
		{"lower on lower", king, three, Lower, true},
		{"lower on higher", five, ten, Lower, false},
		{"higher on lower", king, three, Higher, false},
		{"tie guessing higher", std(card.Hearts, card.Seven), std(card.Spades, card.Seven), Higher, true},
		{"tie guessing lower", std(card.Hearts, card.Seven), std(card.Spades, card.Seven), Lower, true},
		{"high joker beats ace", std(card.Clubs, card.Ace), card.NewJoker(card.RedJoker, true), Higher, true},
		{"low joker under two", std(card.Clubs, card.Two), card.NewJoker(card.BlackJoker, false), Lower, true},
		{"low joker is not higher", std(card.Clubs, card.Two), card.NewJoker(card.BlackJoker, false), Higher, false},
		{"jokers tie", card.NewJoker(card.RedJoker, true), card.NewJoker(card.BlackJoker, true), Lower, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingState(tt.current, []card.Card{tt.next, filler}, 5, 5)
			res, err := Play(s, tt.guess)
			if err != nil {
				t.Fatalf("Play failed: %v", err)
			}
			if res.Correct != tt.correct {
				t.Fatalf("Expected correct=%v, got %v", tt.correct, res.Correct)
			}
			if res.Card != tt.next {
				t.Errorf("Expected revealed card %s, got %s", tt.next, res.Card)
			}
			ns := res.State
			if cur, _ := ns.Current(); cur != tt.next {
				t.Errorf("Expected current card %s, got %s", tt.next, cur)
			}
			if ns.Remaining() != 1 || ns.CardsPlayed() != 2 {
				t.Errorf("Expected 1 remaining and 2 played, got %d/%d", ns.Remaining(), ns.CardsPlayed())
			}
			if tt.correct {
				if ns.Score() != 6 || ns.Status() != Playing || ns.BestScore() != 6 {
					t.Errorf("Expected score 6 playing best 6, got %d %s %d", ns.Score(), ns.Status(), ns.BestScore())
				}
			} else {
				if ns.Score() != 5 || ns.Status() != Lost || ns.BestScore() != 5 {
					t.Errorf("Expected score 5 lost best 5, got %d %s %d", ns.Score(), ns.Status(), ns.BestScore())
				}
			}
		})
	}
}

func TestPlayDoesNotMutateInput(t *testing.T) {
	s := playingState(std(card.Hearts, card.Five), []card.Card{std(card.Spades, card.Ten), std(card.Clubs, card.Two)}, 0, 0)
	before := s
	beforeDeck := s.Deck()

	if _, err := Play(s, Higher); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if !reflect.DeepEqual(s, before) || !reflect.DeepEqual(s.Deck(), beforeDeck) {
		t.Error("Play modified its input state")
	}
}

func TestPlayWinsOnLastCard(t *testing.T) {
	s := playingState(std(card.Hearts, card.Five), []card.Card{std(card.Spades, card.Ten)}, 52, 10)
	res, err := Play(s, Higher)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if res.State.Status() != Won || res.State.Score() != MaxScore || res.State.BestScore() != MaxScore {
		t.Errorf("Expected won with score %d, got %s with %d (best %d)", MaxScore, res.State.Status(), res.State.Score(), res.State.BestScore())
	}
	if !res.State.IsTerminal() {
		t.Error("Won state must be terminal")
	}
}

func TestPlayLosesOnLastCard(t *testing.T) {
	s := playingState(std(card.Hearts, card.Five), []card.Card{std(card.Spades, card.Ten)}, 52, 52)
	res, err := Play(s, Lower)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if res.State.Status() != Lost || res.State.Score() != 52 {
		t.Errorf("Expected lost with 52, got %s with %d", res.State.Status(), res.State.Score())
	}
}

func TestPlayErrors(t *testing.T) {
	if _, err := Play(NewGame(0), Higher); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState on idle game, got %v", err)
	}

	lost := playingState(std(card.Hearts, card.Five), []card.Card{std(card.Spades, card.Ten)}, 0, 0)
	lost.status = Lost
	if _, err := Play(lost, Higher); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState on lost game, got %v", err)
	}

	won := lost
	won.status = Won
	if _, err := Play(won, Higher); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState on won game, got %v", err)
	}

	noCard := playingState(card.Card{}, []card.Card{std(card.Spades, card.Ten)}, 0, 0)
	noCard.hasCurrent = false
	if _, err := Play(noCard, Higher); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState without current card, got %v", err)
	}

	empty := playingState(std(card.Hearts, card.Five), nil, 0, 0)
	_, err := Play(empty, Higher)
	if !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Expected ErrDeckExhausted, got %v", err)
	}
	if errors.Is(err, ErrInvalidState) {
		t.Error("Deck exhausted must be distinguishable from invalid state")
	}

	ok := playingState(std(card.Hearts, card.Five), []card.Card{std(card.Spades, card.Ten)}, 0, 0)
	if _, err := Play(ok, Guess(9)); !errors.Is(err, ErrInvalidGuess) {
		t.Errorf("Expected ErrInvalidGuess, got %v", err)
	}
}

func TestScenario(t *testing.T) {
	cards, err := card.ParseList("2S,10H,5D,RJH")
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	s, err := StartWith(cards, 0)
	if err != nil {
		t.Fatalf("StartWith failed: %v", err)
	}

	steps := []struct {
		guess   Guess
		correct bool
		score   int
		status  Status
	}{
		{Higher, true, 1, Playing},
		{Lower, true, 2, Playing},
		{Lower, false, 2, Lost},
	}
	for i, step := range steps {
		res, err := Play(s, step.guess)
		if err != nil {
			t.Fatalf("step %d: Play failed: %v", i, err)
		}
		if res.Correct != step.correct || res.State.Score() != step.score || res.State.Status() != step.status {
			t.Fatalf("step %d: expected correct=%v score=%d %s, got correct=%v score=%d %s",
				i, step.correct, step.score, step.status, res.Correct, res.State.Score(), res.State.Status())
		}
		s = res.State
	}
	if s.BestScore() != 2 {
		t.Errorf("Expected best score 2, got %d", s.BestScore())
	}
	if _, err := Play(s, Higher); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState after loss, got %v", err)
	}
}

// perfectGuess picks the guess that is correct for the next card
func perfectGuess(s State) Guess {
	cur, _ := s.Current()
	if card.Compare(s.Deck()[0], cur) < 0 {
		return Lower
	}
	return Higher
}

func TestPerfectGameIsWon(t *testing.T) {
	s, err := StartWith(deck.NewSeededBuilder(8).BuildShuffled(), 0)
	if err != nil {
		t.Fatalf("StartWith failed: %v", err)
	}
	for !s.IsTerminal() {
		res, err := Play(s, perfectGuess(s))
		if err != nil {
			t.Fatalf("Play failed: %v", err)
		}
		if !res.Correct {
			t.Fatalf("Perfect guess was judged incorrect")
		}
		s = res.State
	}
	if s.Status() != Won || s.Score() != MaxScore {
		t.Errorf("Expected won with %d, got %s with %d", MaxScore, s.Status(), s.Score())
	}
	if s.CardsPlayed() != TotalCards || s.Progress() != 100 || s.Remaining() != 0 {
		t.Errorf("Expected all cards played, got played=%d progress=%d remaining=%d", s.CardsPlayed(), s.Progress(), s.Remaining())
	}
	if _, err := Play(s, Higher); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState after win, got %v", err)
	}
}

func TestBestScoreTracksMaximum(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	b := deck.NewSeededBuilder(4)
	best := 0
	maxSeen := 0

	for game := 0; game < 30; game++ {
		s, err := StartWith(b.BuildShuffled(), best)
		if err != nil {
			t.Fatalf("StartWith failed: %v", err)
		}
		for !s.IsTerminal() {
			prevScore, prevBest := s.Score(), s.BestScore()
			res, err := Play(s, Guess(rng.IntN(2)))
			if err != nil {
				t.Fatalf("Play failed: %v", err)
			}
			s = res.State
			if s.Score() < prevScore || s.Score() > prevScore+1 {
				t.Fatalf("Score moved from %d to %d", prevScore, s.Score())
			}
			if s.BestScore() < prevBest {
				t.Fatalf("Best score decreased from %d to %d", prevBest, s.BestScore())
			}
			maxSeen = max(maxSeen, s.Score())
			if s.BestScore() != maxSeen {
				t.Fatalf("Expected best score %d, got %d", maxSeen, s.BestScore())
			}
		}
		best = s.BestScore()
	}
}

func TestParseGuess(t *testing.T) {
	for _, in := range []string{"h", "H", "higher", " Higher ", "+"} {
		if g, err := ParseGuess(in); err != nil || g != Higher {
			t.Errorf("ParseGuess(%q) = %v, %v", in, g, err)
		}
	}
	for _, in := range []string{"l", "LOWER", "-"} {
		if g, err := ParseGuess(in); err != nil || g != Lower {
			t.Errorf("ParseGuess(%q) = %v, %v", in, g, err)
		}
	}
	if _, err := ParseGuess("sideways"); !errors.Is(err, ErrInvalidGuess) {
		t.Errorf("Expected ErrInvalidGuess, got %v", err)
	}
}

func TestProgressRounding(t *testing.T) {
	tests := []struct{ played, want int }{
		{0, 0}, {1, 2}, {27, 50}, {53, 98}, {54, 100},
	}
	for _, tt := range tests {
		s := State{cardsPlayed: tt.played}
		if got := s.Progress(); got != tt.want {
			t.Errorf("Progress with %d played: expected %d, got %d", tt.played, tt.want, got)
		}
	}
}
