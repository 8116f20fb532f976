package render

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

type boxStyle struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
}

var (
	boxRound  = boxStyle{"╭", "╮", "╰", "╯", "─", "│"}
	boxDouble = boxStyle{"╔", "╗", "╚", "╝", "═", "║"}
)

// box draws lines centered inside a border with padding columns on each side.
// The box is never wider than the renderer width unless a line itself is.
func (r *Renderer) box(style boxStyle, border colorize.Attribute, padding int, lines []string) {
	inner := 0
	for _, line := range lines {
		inner = max(inner, visibleWidth(line))
	}
	inner += 2 * padding
	if inner+2 > r.opts.Width {
		inner = max(r.opts.Width-2, inner-2*padding)
	}

	b := r.style(border)
	horizontal := strings.Repeat(style.horizontal, inner)

	fmt.Fprintln(r.w, b.Sprint(style.topLeft+horizontal+style.topRight))
	for _, line := range lines {
		gap := inner - visibleWidth(line)
		if gap < 0 {
			gap = 0
		}
		left := gap / 2
		fmt.Fprintln(r.w, b.Sprint(style.vertical)+
			strings.Repeat(" ", left)+line+strings.Repeat(" ", gap-left)+
			b.Sprint(style.vertical))
	}
	fmt.Fprintln(r.w, b.Sprint(style.bottomLeft+horizontal+style.bottomRight))
}

var (
	barStart = colorful.Color{R: 0.23, G: 0.51, B: 0.96} // blue
	barEnd   = colorful.Color{R: 0.13, G: 0.77, B: 0.37} // green
)

// progressBar draws percent as a bar of the given width. Filled cells fade
// from blue to green in 24-bit color; without color they are plain '#'.
func (r *Renderer) progressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100

	var buffer strings.Builder
	for i := 0; i < width; i++ {
		if i >= filled {
			if r.opts.Color {
				buffer.WriteString("░")
			} else {
				buffer.WriteString("-")
			}
			continue
		}
		if !r.opts.Color {
			buffer.WriteString("#")
			continue
		}
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		red, green, blue := barStart.BlendLuv(barEnd, t).Clamped().RGB255()
		buffer.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm█\x1b[0m", red, green, blue))
	}
	return buffer.String()
}
