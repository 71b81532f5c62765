package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path to a
	// JSON style file. Empty or "auto" picks one from the terminal.
	Style string
	// Width wraps output at this column; 0 leaves wrapping to glamour
	Width int
}

// NewGlamourRenderer returns a renderer that detects its style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption

	switch {
	case r.Style != "" && r.Style != "auto":
		options = append(options, glamour.WithStylePath(r.Style))
	case os.Getenv("NO_COLOR") != "":
		options = append(options, glamour.WithStylePath("notty"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

// Render returns content rendered for the terminal, or content itself when
// it is not markdown or glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
