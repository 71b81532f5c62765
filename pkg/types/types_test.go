// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test Binding helpers and PathStatus predicates

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathStatus(t *testing.T) {
	tests := []struct {
		status PathStatus
		name   string
		exists bool
		isLink bool
	}{
		{PathAbsent, "absent", false, false},
		{PathOccupied, "occupied", true, false},
		{PathLinkValid, "link", true, true},
		{PathLinkBroken, "broken-link", true, true},
		{PathStatus(42), "unknown", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.exists, tt.status.Exists())
			assert.Equal(t, tt.isLink, tt.status.IsLink())
		})
	}
}

func TestBinding_Initialized(t *testing.T) {
	assert.False(t, Binding{}.Initialized())
	assert.False(t, Binding{Anchor: "/d"}.Initialized())
	assert.False(t, Binding{Temporary: "/t"}.Initialized())
	assert.True(t, Binding{Anchor: "/d", Temporary: "/t"}.Initialized())
}

func TestBinding_Clear(t *testing.T) {
	full := Binding{Anchor: "/d", Temporary: "/t", CurrentTarget: "/w", Shortcuts: map[string]string{"w": "/w"}}

	b := full.Clone()
	b.Clear(true)
	assert.Equal(t, Binding{Shortcuts: map[string]string{"w": "/w"}}, b)

	b = full.Clone()
	b.Clear(false)
	assert.Equal(t, Binding{}, b)
}

func TestBinding_CloneIsDeep(t *testing.T) {
	orig := Binding{Anchor: "/d", Shortcuts: map[string]string{"a": "/a"}}
	c := orig.Clone()
	c.Shortcuts["b"] = "/b"

	assert.Len(t, orig.Shortcuts, 1)
	assert.Nil(t, Binding{}.Clone().Shortcuts)
}

func TestBinding_ShortcutNames(t *testing.T) {
	b := Binding{Shortcuts: map[string]string{"zeta": "/z", "alpha": "/a", "mid": "/m"}}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, b.ShortcutNames())
	assert.Empty(t, Binding{}.ShortcutNames())
}
