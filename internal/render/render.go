package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/game"
)

// Options controls how a Renderer draws
type Options struct {
	Width int  // terminal width in columns; 0 means 80
	Color bool // emit ANSI colors
	Clear bool // clear the screen between frames
}

// Renderer draws game state as text
type Renderer struct {
	w    io.Writer
	opts Options
}

func New(w io.Writer, opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	return &Renderer{w: w, opts: opts}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of the terminal behind f, or 80
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// style returns a fatih/color printer that honours the renderer's color option
// regardless of what the library detected on stdout
func (r *Renderer) style(attrs ...colorize.Attribute) *colorize.Color {
	c := colorize.New(attrs...)
	if r.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Card returns the display form of c in its suit color
func (r *Renderer) Card(c card.Card) string {
	if c.Color() == card.Red {
		return r.style(colorize.FgRed, colorize.Bold).Sprint(c.String())
	}
	return r.style(colorize.FgHiWhite, colorize.Bold).Sprint(c.String())
}

// Clear clears the screen when enabled
func (r *Renderer) Clear() {
	if r.opts.Clear {
		fmt.Fprint(r.w, "\033[H\033[2J")
	}
}

func (r *Renderer) Welcome() {
	title := r.style(colorize.FgCyan, colorize.Bold)
	dim := r.style(colorize.Faint)
	r.box(boxRound, colorize.FgCyan, 1, []string{
		title.Sprint("HIGHER OR LOWER"),
		"",
		"Guess if the next card will be",
		"higher or lower than the current one.",
		"",
		dim.Sprintf("Complete all %d cards to win!", game.TotalCards),
	})
}

// Header draws the score line and the progress bar
func (r *Renderer) Header(s game.State) {
	green := r.style(colorize.FgGreen, colorize.Bold)
	yellow := r.style(colorize.FgYellow, colorize.Bold)
	blue := r.style(colorize.FgBlue, colorize.Bold)

	r.box(boxRound, colorize.FgCyan, 1, []string{
		r.style(colorize.FgCyan, colorize.Bold).Sprint("Higher or Lower"),
		"",
		fmt.Sprintf("Score: %s | Best: %s | Cards: %s (%d%%)",
			green.Sprint(s.Score()),
			yellow.Sprint(s.BestScore()),
			blue.Sprintf("%d/%d", s.CardsPlayed(), game.TotalCards),
			s.Progress()),
		r.progressBar(s.Progress(), 30),
	})
}

// CurrentCard draws the card the next guess is compared against
func (r *Renderer) CurrentCard(s game.State) {
	c, ok := s.Current()
	if !ok {
		return
	}
	r.box(boxDouble, cardBorder(c), 1, []string{
		r.style(colorize.Bold).Sprint("Current Card:"),
		"",
		r.Card(c),
	})
}

func (r *Renderer) Remaining(s game.State) {
	fmt.Fprintln(r.w, r.style(colorize.Faint).Sprintf("\nRemaining cards: %d", s.Remaining()))
}

// Reveal draws the outcome of a guess
func (r *Renderer) Reveal(res game.Result) {
	verdict := r.style(colorize.FgRed).Sprint("Wrong!")
	style, border := boxDouble, colorize.FgRed
	if res.Correct {
		verdict = r.style(colorize.FgGreen).Sprint("Correct!")
		style, border = boxRound, colorize.FgGreen
	}
	r.box(style, border, 1, []string{
		verdict,
		"",
		r.style(colorize.Bold).Sprint("The card was:"),
		r.Card(res.Card),
	})
}

// Final draws the end-of-game summary
func (r *Renderer) Final(s game.State) {
	won := s.Status() == game.Won
	message := r.style(colorize.FgRed, colorize.Bold).Sprint("Game Over!")
	border := colorize.FgRed
	if won {
		message = r.style(colorize.FgGreen, colorize.Bold).Sprint("CONGRATULATIONS! You completed the entire deck!")
		border = colorize.FgGreen
	}

	lines := []string{
		message,
		"",
		fmt.Sprintf("Final Score: %s/%d", r.style(colorize.FgGreen, colorize.Bold).Sprint(s.Score()), game.MaxScore),
		fmt.Sprintf("Best Score: %s", r.style(colorize.FgYellow, colorize.Bold).Sprint(s.BestScore())),
	}
	if s.Score() == s.BestScore() && s.Score() > 0 {
		lines = append(lines, r.style(colorize.FgYellow, colorize.Bold).Sprint("New Best Score!"))
	}
	r.box(boxRound, border, 1, lines)
}

// CardLine formats one card for deck listings: code, display and value
func (r *Renderer) CardLine(c card.Card) string {
	display := c.String()
	pad := 13 - utf8.RuneCountInString(display)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("%-4s %s%s%2d", c.Code(), r.Card(c), strings.Repeat(" ", pad), c.Value())
}

func cardBorder(c card.Card) colorize.Attribute {
	if c.Color() == card.Red {
		return colorize.FgRed
	}
	return colorize.FgWhite
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// visibleWidth is the number of terminal cells s occupies, assuming every
// rune is one cell wide
func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}
