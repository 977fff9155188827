package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape: input.KeyEscape,
	tcell.KeyEnter:  input.KeyEnter,
	tcell.KeyCtrlC:  input.KeyCtrlC,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
}

// KeyOf maps a tcell key event to a logical key; unmapped keys yield input.KeyNone
func KeyOf(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return input.KeyFromRune(ev.Rune())
	}
	return specialKeys[ev.Key()]
}
