package types

import "sort"

// Binding is the persisted description of a redirected folder.
//
//   - Anchor is where the OS expects the desktop folder. After init it holds a
//     symlink.
//   - Temporary is where the original, real folder was moved during init.
//   - CurrentTarget is the directory the anchor link currently resolves to.
//
// Shortcuts maps user chosen names to target directories. An empty string
// means the field is unset.
type Binding struct {
	Anchor        string            `toml:"anchor,omitempty" json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Temporary     string            `toml:"temporary,omitempty" json:"temporary,omitempty" yaml:"temporary,omitempty"`
	CurrentTarget string            `toml:"current_target,omitempty" json:"currentTarget,omitempty" yaml:"currentTarget,omitempty"`
	Shortcuts     map[string]string `toml:"shortcuts,omitempty" json:"shortcuts,omitempty" yaml:"shortcuts,omitempty"`
}

// Initialized reports whether init has recorded both anchor and temporary paths
func (b Binding) Initialized() bool {
	return b.Anchor != "" && b.Temporary != ""
}

// Clear forgets the link binding. Shortcuts survive when keepShortcuts is set.
func (b *Binding) Clear(keepShortcuts bool) {
	b.Anchor = ""
	b.Temporary = ""
	b.CurrentTarget = ""
	if !keepShortcuts {
		b.Shortcuts = nil
	}
}

// ShortcutNames returns the shortcut names in sorted order
func (b Binding) ShortcutNames() []string {
	names := make([]string, 0, len(b.Shortcuts))
	for name := range b.Shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the binding
func (b Binding) Clone() Binding {
	c := b
	if b.Shortcuts != nil {
		c.Shortcuts = make(map[string]string, len(b.Shortcuts))
		for k, v := range b.Shortcuts {
			c.Shortcuts[k] = v
		}
	}
	return c
}
