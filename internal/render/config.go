package render

import (
	"os"

	"github.com/diogo/promchat/internal/config"
)

// StyleEnv overrides the configured markdown style
const StyleEnv = "GLAMOUR_STYLE"

// LoadOptions builds render options from the markdown section of the
// user configuration, wrapping at width. GLAMOUR_STYLE wins over the
// configured style.
func LoadOptions(md config.MarkdownConfig, width int) Options {
	opts := DefaultOptions().WithWidth(width)

	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.Emoji = md.EnableEmoji
	opts.KeepLineBreaks = md.PreserveNewLines
	opts.WrapTables = md.TableWrap
	opts.InlineLinks = md.InlineTableLinks

	if style := os.Getenv(StyleEnv); style != "" {
		opts.Style = style
	}

	return opts
}
