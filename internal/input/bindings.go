package input

import "fmt"

// Snapshot is the directional input sampled at the start of a tick.
type Snapshot struct {
	Up, Down, Left, Right bool
}

// Bindings maps game controls to the keys that trigger them.
// Directions are level-triggered; Fire, Start and Restart fire on key-down edges.
type Bindings struct {
	Up      []Key `yaml:"up"`
	Down    []Key `yaml:"down"`
	Left    []Key `yaml:"left"`
	Right   []Key `yaml:"right"`
	Fire    []Key `yaml:"fire"`
	Start   []Key `yaml:"start"`
	Restart []Key `yaml:"restart"`
	Quit    []Key `yaml:"quit"`
	Mute    []Key `yaml:"mute"`
}

// DefaultBindings returns arrow keys for movement, space to fire,
// Enter to start, R to get back to the menu and M to toggle sound.
func DefaultBindings() Bindings {
	return Bindings{
		Up:      []Key{KeyArrowUp},
		Down:    []Key{KeyArrowDown},
		Left:    []Key{KeyArrowLeft},
		Right:   []Key{KeyArrowRight},
		Fire:    []Key{KeySpace},
		Start:   []Key{KeyEnter},
		Restart: []Key{KeyR},
		Quit:    []Key{KeyEscape},
		Mute:    []Key{KeyM},
	}
}

// All returns every bound key once, in binding order.
func (b Bindings) All() []Key {
	seen := make(map[Key]bool)
	var keys []Key
	for _, group := range [][]Key{b.Up, b.Down, b.Left, b.Right, b.Fire, b.Start, b.Restart, b.Quit, b.Mute} {
		for _, k := range group {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Validate checks that every control has at least one key. Quit and mute
// may be left unbound.
func (b Bindings) Validate() error {
	controls := []struct {
		name string
		keys []Key
	}{
		{"up", b.Up},
		{"down", b.Down},
		{"left", b.Left},
		{"right", b.Right},
		{"fire", b.Fire},
		{"start", b.Start},
		{"restart", b.Restart},
	}
	for _, c := range controls {
		if len(c.keys) == 0 {
			return fmt.Errorf("no key bound to %q", c.name)
		}
	}
	return nil
}
