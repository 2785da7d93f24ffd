package picker

import "unicode"

// Action identifies the transition the dispatcher resolved from a key event.
type Action int

const (
	ActionNone Action = iota
	ActionMoveDown
	ActionMoveUp
	ActionSelectFirst
	ActionSelectLast
	ActionHalfPageDown
	ActionHalfPageUp
	ActionActivate
	ActionGoBack
	ActionClearQuery
	ActionCancel
	ActionTextEntry
	ActionNavigation
	ActionDeleteChar
	ActionTypeChar
	ActionPreviewDown
	ActionPreviewUp
)

// Bindings maps (mode, key) to an action. Bindings are data, not control
// flow; tests enumerate this table directly. Keys use bubbletea's string
// names ("ctrl+d", "enter", ...), which hosts translate their events into.
var Bindings = map[Mode]map[string]Action{
	Navigation: {
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
	},
	TextEntry: {
		"esc":       ActionNavigation,
		"enter":     ActionActivate,
		"backspace": ActionDeleteChar,
		"ctrl+c":    ActionCancel,
	},
}

// Resolve maps a raw key to an action for the given mode. Unmapped keys in
// Navigation are ignored; unmapped single-rune printable keys in TextEntry
// become ActionTypeChar carrying the rune.
func Resolve(mode Mode, key string) (Action, rune, bool) {
	if a, ok := Bindings[mode][key]; ok {
		return a, 0, true
	}
	if mode == TextEntry {
		rs := []rune(key)
		if len(rs) == 1 && unicode.IsPrint(rs[0]) {
			return ActionTypeChar, rs[0], true
		}
	}
	return ActionNone, 0, false
}

// Apply performs a resolved action against the session, returning a refresh
// token when the transition requires re-ranking. Preview actions belong to
// the host and fall through untouched.
func Apply(s *Session, a Action, r rune) (Refresh, bool) {
	switch a {
	case ActionMoveDown:
		s.MoveSelection(1)
	case ActionMoveUp:
		s.MoveSelection(-1)
	case ActionSelectFirst:
		s.SelectFirst()
	case ActionSelectLast:
		s.SelectLast()
	case ActionHalfPageDown:
		s.HalfPageDown()
	case ActionHalfPageUp:
		s.HalfPageUp()
	case ActionActivate:
		return s.Activate()
	case ActionGoBack:
		return s.GoBack()
	case ActionClearQuery:
		return s.ClearQuery()
	case ActionCancel:
		s.Cancel()
	case ActionTextEntry:
		s.SwitchMode(TextEntry)
	case ActionNavigation:
		s.SwitchMode(Navigation)
	case ActionDeleteChar:
		return s.DeleteRune()
	case ActionTypeChar:
		return s.TypeRune(r)
	}
	return Refresh{}, false
}
