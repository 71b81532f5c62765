// Package styles defines the visual styling for desks' terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The defaults are embedded from
// styles.yaml; a user file with the same layout can replace them.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles bound to one renderer
type Registry struct {
	styles map[string]lipgloss.Style
}

// Default builds the registry from the embedded styles.yaml
func Default(r *lipgloss.Renderer) *Registry {
	reg, err := Parse(defaultStyles, r)
	if err != nil {
		panic(fmt.Sprintf("embedded styles.yaml is invalid: %v", err))
	}
	return reg
}

// LoadFile builds the registry from a YAML file
func LoadFile(path string, r *lipgloss.Renderer) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return Parse(data, r)
}

// Parse builds the registry from YAML. A nil renderer means the lipgloss
// default renderer.
func Parse(data []byte, r *lipgloss.Renderer) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		style, err := buildStyle(r, def, colors)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
		reg.styles[name] = style
	}
	return reg, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		color, ok := colors[def.Foreground]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := colors[def.Background]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Background)
		}
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style, nil
}

// Get returns the named style, or an empty one when it is not defined
func (reg *Registry) Get(name string) lipgloss.Style {
	if style, ok := reg.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined
func (reg *Registry) Has(name string) bool {
	_, ok := reg.styles[name]
	return ok
}

// Render applies the named style to s
func (reg *Registry) Render(name, s string) string {
	return reg.Get(name).Render(s)
}
