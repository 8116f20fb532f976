package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/deck"
	"github.com/arcanaland/highlow/internal/game"
	"github.com/arcanaland/highlow/internal/render"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Higher or Lower",
	Long: `Play starts an interactive game. Answer h (higher) or l (lower) at each prompt,
or q to quit. Your best score is kept for as long as the session runs.

Settings are read from the config file (see 'highlow config show'); flags override them.

Examples:
  highlow play
  highlow play --seed 42
  highlow play --cards 2S,10H,5D,RJH`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}
		best, _ := cmd.Flags().GetInt("best")
		noColor, _ := cmd.Flags().GetBool("no-color")
		cardsFlag, _ := cmd.Flags().GetString("cards")

		if best < 0 || best > game.MaxScore {
			return fmt.Errorf("--best must be between 0 and %d", game.MaxScore)
		}

		var forced []card.Card
		if cardsFlag != "" {
			forced, err = card.ParseList(cardsFlag)
			if err != nil {
				return err
			}
			if len(forced) < 2 {
				return fmt.Errorf("--cards needs at least two cards, got %d", len(forced))
			}
		}

		tty := render.IsTerminal(os.Stdout)
		r := render.New(cmd.OutOrStdout(), render.Options{
			Width: render.TerminalWidth(os.Stdout),
			Color: useColor(cfg, noColor, tty),
			Clear: tty,
		})

		s := &session{
			in:            bufio.NewReader(cmd.InOrStdin()),
			out:           cmd.OutOrStdout(),
			r:             r,
			forced:        forced,
			best:          best,
			showRemaining: cfg.ShowRemaining,
		}
		if seed != 0 {
			s.builder = deck.NewSeededBuilder(seed)
		}

		return s.run()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64("seed", 0, "Seed for deck building and shuffling (0 for random)")
	playCmd.Flags().Int("best", 0, "Best score to start the session with")
	playCmd.Flags().String("cards", "", "Comma separated card codes to deal in order instead of a shuffled deck")
	playCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// useColor reports whether output should be colored: the config allows it,
// --no-color is not set and stdout is a terminal
func useColor(cfg *config.Config, noColor, tty bool) bool {
	return cfg.Color && !noColor && tty
}

// errQuit stops the session when the player quits or input ends
var errQuit = errors.New("quit")

// session runs consecutive games, carrying the best score between them
type session struct {
	in            *bufio.Reader
	out           io.Writer
	r             *render.Renderer
	builder       *deck.Builder // nil uses the process-wide generator
	forced        []card.Card   // deal these instead of a shuffled deck
	best          int
	games         int
	showRemaining bool
}

func (s *session) run() error {
	s.r.Clear()
	s.r.Welcome()

	for {
		err := s.playGame()
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}

		again, err := s.confirm("Play again? [Y/n] ", true)
		if err != nil && err != io.EOF {
			return err
		}
		if err != nil || !again {
			break
		}
	}

	fmt.Fprintln(s.out, "\nThanks for playing!")
	return nil
}

func (s *session) start() (game.State, error) {
	switch {
	case s.forced != nil:
		return game.StartWith(s.forced, s.best)
	case s.builder != nil:
		return game.StartWith(s.builder.BuildShuffled(), s.best)
	default:
		return game.Start(s.best)
	}
}

func (s *session) playGame() error {
	if s.games > 0 {
		s.r.Clear()
	}
	s.games++

	fmt.Fprintln(s.out, "Shuffling deck...")
	state, err := s.start()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deck shuffled! Let's play!")

	for !state.IsTerminal() {
		s.r.Header(state)
		s.r.CurrentCard(state)
		if s.showRemaining {
			s.r.Remaining(state)
		}

		guess, err := s.readGuess()
		if err != nil {
			s.best = state.BestScore()
			return err
		}

		res, err := game.Play(state, guess)
		if err != nil {
			return err
		}
		state = res.State

		s.r.Reveal(res)
	}

	s.best = state.BestScore()
	s.r.Final(state)
	return nil
}

// readGuess prompts until the player answers higher or lower. Quitting or
// running out of input returns errQuit.
func (s *session) readGuess() (game.Guess, error) {
	for {
		fmt.Fprint(s.out, "Will the next card be higher or lower? [h/l, q to quit] ")
		line, err := s.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && answer == "" {
			if err == io.EOF {
				return 0, errQuit
			}
			return 0, err
		}

		switch strings.ToLower(answer) {
		case "q", "quit", "exit":
			return 0, errQuit
		}

		guess, perr := game.ParseGuess(answer)
		if perr == nil {
			return guess, nil
		}
		fmt.Fprintln(s.out, "Please answer h (higher) or l (lower).")
		if err != nil {
			return 0, errQuit
		}
	}
}

// confirm asks a yes/no question; an empty answer picks def
func (s *session) confirm(prompt string, def bool) (bool, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if err != nil && answer == "" {
		return false, err
	}

	switch answer {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
