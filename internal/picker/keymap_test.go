package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationBindings(t *testing.T) {
	cases := map[string]Action{
		"j":      ActionMoveDown,
		"down":   ActionMoveDown,
		"k":      ActionMoveUp,
		"up":     ActionMoveUp,
		"g":      ActionSelectFirst,
		"home":   ActionSelectFirst,
		"G":      ActionSelectLast,
		"end":    ActionSelectLast,
		"ctrl+d": ActionHalfPageDown,
		"ctrl+u": ActionHalfPageUp,
		"enter":  ActionActivate,
		"h":      ActionGoBack,
		"left":   ActionGoBack,
		"i":      ActionTextEntry,
		"/":      ActionTextEntry,
		"esc":    ActionClearQuery,
		"q":      ActionCancel,
		"ctrl+c": ActionCancel,
		"J":      ActionPreviewDown,
		"K":      ActionPreviewUp,
	}

	for key, want := range cases {
		action, _, ok := Resolve(Navigation, key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, want, action, "key %q", key)
	}
	assert.Len(t, Bindings[Navigation], len(cases))
}

func TestTextEntryBindings(t *testing.T) {
	cases := map[string]Action{
		"esc":       ActionNavigation,
		"enter":     ActionActivate,
		"backspace": ActionDeleteChar,
		"ctrl+c":    ActionCancel,
	}

	for key, want := range cases {
		action, _, ok := Resolve(TextEntry, key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, want, action, "key %q", key)
	}
	assert.Len(t, Bindings[TextEntry], len(cases))
}

func TestUnmappedNavigationKeyIgnored(t *testing.T) {
	for _, key := range []string{"x", "tab", "ctrl+z", " "} {
		_, _, ok := Resolve(Navigation, key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestTextEntryPrintableFallback(t *testing.T) {
	for _, key := range []string{"a", "Z", "7", ".", " ", "é"} {
		action, r, ok := Resolve(TextEntry, key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, ActionTypeChar, action)
		assert.Equal(t, []rune(key)[0], r)
	}
}

func TestTextEntryNonPrintableIgnored(t *testing.T) {
	for _, key := range []string{"tab", "ctrl+z", "f5", "\x1b"} {
		_, _, ok := Resolve(TextEntry, key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestApplyRoutesActions(t *testing.T) {
	s := newLoadedSession(t, 10, 4)

	_, needs := Apply(s, ActionMoveDown, 0)
	assert.False(t, needs)
	assert.Equal(t, 2, s.Selected())

	Apply(s, ActionSelectLast, 0)
	assert.Equal(t, 10, s.Selected())

	Apply(s, ActionTextEntry, 0)
	assert.Equal(t, TextEntry, s.Mode())

	token, needs := Apply(s, ActionTypeChar, 'm')
	assert.True(t, needs)
	assert.Equal(t, "m", token.Query)

	token, needs = Apply(s, ActionDeleteChar, 0)
	assert.True(t, needs)
	assert.Empty(t, token.Query)

	Apply(s, ActionNavigation, 0)
	assert.Equal(t, Navigation, s.Mode())

	// Preview actions are host concerns: no session effect, no refresh.
	_, needs = Apply(s, ActionPreviewDown, 0)
	assert.False(t, needs)

	Apply(s, ActionCancel, 0)
	assert.Equal(t, Cancelled, s.Outcome())
}
