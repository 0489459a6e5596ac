// Package render turns answer text into terminal markdown and holds the
// color themes shared by the chat and the CLI.
package render

import "github.com/charmbracelet/glamour"

// Options controls how an answer body is rendered as markdown.
// Options is comparable: equal values share pooled renderers.
type Options struct {
	// Width is the word wrap column
	Width int

	// Style is a glamour style name ("dark", "light", "notty", ...) or a
	// path to a JSON style file
	Style string

	Emoji          bool
	KeepLineBreaks bool
	WrapTables     bool
	InlineLinks    bool
}

// DefaultOptions keeps line breaks as the service sent them.
func DefaultOptions() Options {
	return Options{
		Width:          80,
		Style:          "dark",
		KeepLineBreaks: true,
		WrapTables:     true,
	}
}

// WithWidth returns a copy wrapping at width columns.
func (o Options) WithWidth(width int) Options {
	if width < 1 {
		width = 1
	}
	o.Width = width
	return o
}

func (o Options) glamourOptions() []glamour.TermRendererOption {
	gopts := []glamour.TermRendererOption{
		glamour.WithStylePath(o.Style),
		glamour.WithWordWrap(o.Width),
		glamour.WithTableWrap(o.WrapTables),
		glamour.WithInlineTableLinks(o.InlineLinks),
	}
	if o.Emoji {
		gopts = append(gopts, glamour.WithEmoji())
	}
	if o.KeepLineBreaks {
		gopts = append(gopts, glamour.WithPreservedNewLines())
	}
	return gopts
}
