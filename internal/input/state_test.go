package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatePressRelease(t *testing.T) {
	s := NewState()
	assert.False(t, s.IsPressed(KeyArrowUp), "unknown key reads as released")

	s.Press(KeyArrowUp)
	assert.True(t, s.IsPressed(KeyArrowUp))

	s.Release(KeyArrowUp)
	assert.False(t, s.IsPressed(KeyArrowUp))
	assert.Empty(t, s.Pressed())
}

func TestStatePressedSorted(t *testing.T) {
	s := NewState()
	s.Press(KeyR)
	s.Press(KeyArrowUp)
	s.Press(KeySpace)

	assert.Equal(t, []Key{KeySpace, KeyArrowUp, KeyR}, s.Pressed())

	s.Clear()
	assert.Empty(t, s.Pressed())
}

func TestSnapshotUsesBindings(t *testing.T) {
	s := NewState()
	b := DefaultBindings()
	b.Up = append(b.Up, KeyW)

	s.Press(KeyW)
	s.Press(KeyArrowRight)

	assert.Equal(t, Snapshot{Up: true, Right: true}, s.Snapshot(b))
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(KeyArrowLeft, (i+j)%2 == 0)
				_ = s.Snapshot(DefaultBindings())
			}
		}(i)
	}
	wg.Wait()
}

func TestBindingsValidate(t *testing.T) {
	require.NoError(t, DefaultBindings().Validate())

	b := DefaultBindings()
	b.Fire = nil
	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fire")
}

func TestBindingsAllDeduplicates(t *testing.T) {
	b := DefaultBindings()
	b.Start = append(b.Start, KeySpace)

	all := b.All()
	count := 0
	for _, k := range all {
		if k == KeySpace {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, all, KeyEscape)
	assert.Contains(t, all, KeyM)
}

func TestBindingsQuitAndMuteOptional(t *testing.T) {
	b := DefaultBindings()
	b.Quit = nil
	b.Mute = nil
	assert.NoError(t, b.Validate())
}
