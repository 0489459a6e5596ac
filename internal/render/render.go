package render

import "strings"

// Markdown renders content for the terminal.
func Markdown(content string, opts Options) (string, error) {
	r, release, err := borrow(opts)
	if err != nil {
		return "", err
	}
	defer release()

	return r.Render(content)
}

// Answer renders an answer body, falling back to the content as received
// when the style cannot be loaded or rendering fails.
func Answer(content string, opts Options) string {
	out, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
