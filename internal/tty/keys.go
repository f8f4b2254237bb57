// Package tty runs the arena in a terminal: tcell draws the field as
// character cells and beep plays the synthesized sounds.
package tty

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/zonearena/internal/input"
)

// DefaultHold is how long a key stays down after its last press or
// auto-repeat. Terminals report key presses only, never releases.
const DefaultHold = 180 * time.Millisecond

// keyFromEvent converts a tcell key event to a key identifier.
func keyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp, true
	case tcell.KeyDown:
		return input.KeyArrowDown, true
	case tcell.KeyLeft:
		return input.KeyArrowLeft, true
	case tcell.KeyRight:
		return input.KeyArrowRight, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 0 {
			return "", false
		}
		return input.Key(string(unicode.ToLower(r))), true
	}
	return "", false
}

// holdTracker emulates key releases from a stream of presses.
type holdTracker struct {
	state *input.State
	hold  time.Duration
	last  map[input.Key]time.Time
}

func newHoldTracker(state *input.State, hold time.Duration) *holdTracker {
	return &holdTracker{
		state: state,
		hold:  hold,
		last:  make(map[input.Key]time.Time),
	}
}

// press marks k down and restarts its hold window.
func (h *holdTracker) press(k input.Key, now time.Time) {
	h.state.Press(k)
	h.last[k] = now
}

// expire releases every key not pressed again within the hold window.
func (h *holdTracker) expire(now time.Time) {
	for k, t := range h.last {
		if now.Sub(t) >= h.hold {
			h.state.Release(k)
			delete(h.last, k)
		}
	}
}
