package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/desks/pkg/commands/stateview"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// errorDoc is the structured shape of a failure
type errorDoc struct {
	Error   string                 `json:"error" yaml:"error" toml:"error"`
	Code    string                 `json:"code" yaml:"code" toml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

func newErrorDoc(err error) errorDoc {
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		details = nil
	}
	return errorDoc{Error: err.Error(), Code: string(errors.GetErrorCode(err)), Details: details}
}

type messageDoc struct {
	Message string `json:"message" yaml:"message" toml:"message"`
}

// encoder is the part json, yaml and toml encoders share
type encoder interface {
	Encode(v interface{}) error
}

// structuredRenderer writes every value as one document
type structuredRenderer struct {
	enc encoder
}

func newJSONRenderer(w io.Writer) *structuredRenderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &structuredRenderer{enc: enc}
}

func newYAMLRenderer(w io.Writer) *structuredRenderer {
	return &structuredRenderer{enc: &yamlDocEncoder{w: w}}
}

func newTOMLRenderer(w io.Writer) *structuredRenderer {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return &structuredRenderer{enc: enc}
}

func (r *structuredRenderer) RenderResult(result *workflow.Result) error {
	return r.enc.Encode(result)
}

func (r *structuredRenderer) RenderState(view *stateview.View) error {
	return r.enc.Encode(view)
}

func (r *structuredRenderer) RenderError(err error) error {
	return r.enc.Encode(newErrorDoc(err))
}

func (r *structuredRenderer) RenderMessage(msg string) error {
	return r.enc.Encode(messageDoc{Message: msg})
}

// yamlDocEncoder closes each document so it is flushed right away
type yamlDocEncoder struct {
	w io.Writer
}

func (e *yamlDocEncoder) Encode(v interface{}) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
