// Package output renders workflow results and the state view for humans
// (styled or plain text) and for machines (JSON, YAML or TOML).
package output

import (
	"io"

	"github.com/arthur-debert/desks/pkg/commands/stateview"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
)

// Renderer writes command output in one format
type Renderer interface {
	// RenderResult renders the outcome of a mutating workflow
	RenderResult(result *workflow.Result) error
	// RenderState renders the read-only state view
	RenderState(view *stateview.View) error
	// RenderError renders a failure
	RenderError(err error) error
	// RenderMessage renders a one-line message
	RenderMessage(msg string) error
}

// NewRenderer returns a renderer for format writing to w. FormatAuto must be
// resolved by the caller first, see Resolve.
func NewRenderer(w io.Writer, format Format) (Renderer, error) {
	log := logging.GetLogger("output")
	log.Debug().Str("format", format.String()).Msg("Creating renderer")

	switch format {
	case FormatTerminal:
		return newTextRenderer(w, true), nil
	case FormatText:
		return newTextRenderer(w, false), nil
	case FormatJSON:
		return newJSONRenderer(w), nil
	case FormatYAML:
		return newYAMLRenderer(w), nil
	case FormatTOML:
		return newTOMLRenderer(w), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "no renderer for format %s", format).
			WithDetail("format", format.String())
	}
}
