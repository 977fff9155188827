package input

import (
	"fmt"
	"strings"
)

// Key is a backend-independent key name
// Letters and digits are their lowercase rune, other keys use a word ("escape", "up")
type Key string

const (
	KeyNone   Key = ""
	KeyEscape Key = "escape"
	KeyEnter  Key = "enter"
	KeySpace  Key = "space"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyCtrlC  Key = "ctrl+c"
)

var namedKeys = map[Key]struct{}{
	KeyEscape: {},
	KeyEnter:  {},
	KeySpace:  {},
	KeyUp:     {},
	KeyDown:   {},
	KeyLeft:   {},
	KeyRight:  {},
	KeyCtrlC:  {},
}

// Aliases accepted by ParseKey
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	" ":      KeySpace,
}

// ParseKey normalizes a key name from config
// Returns error on empty or unknown names
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		if s == " " {
			return KeySpace, nil
		}
		return KeyNone, fmt.Errorf("empty key name")
	}

	if k, ok := keyAliases[name]; ok {
		return k, nil
	}

	k := Key(name)
	if _, ok := namedKeys[k]; ok {
		return k, nil
	}

	if r, ok := k.Rune(); ok && isBindableRune(r) {
		return k, nil
	}

	return KeyNone, fmt.Errorf("unknown key %q", s)
}

// KeyFromRune maps a typed character to its Key, folding case
func KeyFromRune(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if !isBindableRune(r) {
		return KeyNone
	}
	return Key(string(r))
}

// Rune returns the character for single-rune keys
func (k Key) Rune() (rune, bool) {
	rs := []rune(string(k))
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

func (k Key) String() string {
	if k == KeyNone {
		return "none"
	}
	return string(k)
}

func isBindableRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
