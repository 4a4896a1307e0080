package render

import "strings"

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := renderers.lookup(opts)
	if err != nil {
		return "", err
	}
	return renderer.render(content)
}

// Reply renders an assistant reply, falling back to the raw text when the
// renderer cannot be built. Surrounding blank lines glamour adds are trimmed.
func Reply(content string, opts Options) string {
	out, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
