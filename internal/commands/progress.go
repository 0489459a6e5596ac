package commands

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/promchat/internal/render"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	clearLine  = "\r\033[K"
)

// progress draws the thinking line on a terminal while one question is
// pending. It uses the same frames as the chat spinner and the current
// TUI theme.
type progress struct {
	out    io.Writer
	text   string
	frames spinner.Spinner

	glyph lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style

	quit chan struct{}
	done chan struct{}
	once sync.Once
}

func newProgress(out io.Writer, text string) *progress {
	theme := render.GetTUITheme()
	return &progress{
		out:    out,
		text:   text,
		frames: spinner.Points,
		glyph:  lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		label:  lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
		ok:     lipgloss.NewStyle().Foreground(colorSuccess),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (p *progress) start() {
	go p.run()
}

func (p *progress) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.frames.FPS)
	defer ticker.Stop()

	fmt.Fprint(p.out, hideCursor)
	for frame := 0; ; frame++ {
		p.draw(frame)
		select {
		case <-p.quit:
			fmt.Fprint(p.out, clearLine+showCursor)
			return
		case <-ticker.C:
		}
	}
}

func (p *progress) draw(frame int) {
	glyph := p.frames.Frames[frame%len(p.frames.Frames)]
	fmt.Fprintf(p.out, "%s%s %s", clearLine, p.glyph.Render(glyph), p.label.Render(p.text))
}

// stop erases the line. It is safe to call more than once.
func (p *progress) stop() {
	p.once.Do(func() { close(p.quit) })
	<-p.done
}

// succeed replaces the line with a check mark and message
func (p *progress) succeed(message string) {
	p.stop()
	fmt.Fprintf(p.out, "%s %s\n", p.ok.Bold(true).Render("✓"), p.ok.Render(message))
}
