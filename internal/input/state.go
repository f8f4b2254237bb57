// Package input holds the pressed/released state of keys, keyed by identifier.
// Frontends write to it as key events arrive; the simulation only reads it,
// once per tick, through a Snapshot.
package input

import (
	"sort"
	"sync"
)

// Key identifies a physical key. Identifiers follow the DOM KeyboardEvent.key
// naming so bindings read the same in every frontend ("ArrowUp", " ", "r").
type Key string

// Keys the frontends know how to report
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = " "
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyR          Key = "r"
	KeyM          Key = "m"
)

// State maps key identifiers to their pressed state.
// It is safe for concurrent use; an event goroutine may write while the
// game loop reads.
type State struct {
	mu      sync.RWMutex
	pressed map[Key]bool
}

// NewState creates an empty State with every key released.
func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

// Set records the pressed state of a key.
func (s *State) Set(k Key, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if down {
		s.pressed[k] = true
	} else {
		delete(s.pressed, k)
	}
}

// Press marks a key as held down.
func (s *State) Press(k Key) {
	s.Set(k, true)
}

// Release marks a key as released.
func (s *State) Release(k Key) {
	s.Set(k, false)
}

// IsPressed returns whether the key is currently held (false if never seen).
func (s *State) IsPressed(k Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pressed[k]
}

// AnyPressed returns whether at least one of keys is held.
func (s *State) AnyPressed(keys []Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, k := range keys {
		if s.pressed[k] {
			return true
		}
	}
	return false
}

// Pressed returns the held keys in sorted order.
func (s *State) Pressed() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]Key, 0, len(s.pressed))
	for k := range s.pressed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clear releases every key.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed = make(map[Key]bool)
}

// Snapshot samples the directional keys through the given bindings.
func (s *State) Snapshot(b Bindings) Snapshot {
	return Snapshot{
		Up:    s.AnyPressed(b.Up),
		Down:  s.AnyPressed(b.Down),
		Left:  s.AnyPressed(b.Left),
		Right: s.AnyPressed(b.Right),
	}
}
