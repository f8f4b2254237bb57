package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/render/rendertest"
)

func newTestMenu() (*MainMenu, *rendertest.Renderer, *rendertest.Input) {
	r := rendertest.NewRenderer()
	in := rendertest.NewInput()
	return NewMainMenu(r, in, []input.Key{input.KeyEnter}, 800, 600), r, in
}

func TestUpdateIdle(t *testing.T) {
	m, _, _ := newTestMenu()
	assert.False(t, m.Update())
}

func TestUpdateStartKey(t *testing.T) {
	m, _, in := newTestMenu()

	in.Tap(input.KeyEnter)
	assert.True(t, m.Update())

	// Held without a new press does not start again
	in.EndFrame()
	assert.False(t, m.Update())
}

func TestUpdateUnboundKeyIgnored(t *testing.T) {
	m, _, in := newTestMenu()
	in.Tap(input.KeySpace)
	assert.False(t, m.Update())
}

func TestUpdateClickOnStartButton(t *testing.T) {
	m, _, in := newTestMenu()
	in.CursorX, in.CursorY = 400, 325
	in.MouseDown = true

	assert.True(t, m.Update())
	// Still held: no new click edge
	assert.False(t, m.Update())

	in.MouseDown = false
	assert.False(t, m.Update())
	in.MouseDown = true
	assert.True(t, m.Update())
}

func TestUpdateClickOutsideButton(t *testing.T) {
	m, _, in := newTestMenu()
	in.CursorX, in.CursorY = 50, 50
	in.MouseDown = true

	assert.False(t, m.Update())
}

func TestDrawShowsTitleAndButton(t *testing.T) {
	m, r, _ := newTestMenu()
	screen := rendertest.NewImage(800, 600)

	m.Draw(screen)

	assert.NotNil(t, screen.Filled)
	assert.Contains(t, r.Texts(), "ZONE ARENA")
	assert.Contains(t, r.Texts(), "Start")

	fills := r.Ops("FillRect")
	if assert.Len(t, fills, 1) {
		assert.Equal(t, float32(300), fills[0].X)
		assert.Equal(t, float32(300), fills[0].Y)
	}
}

func TestPointInRectIsInclusive(t *testing.T) {
	r := rect{x: 10, y: 10, w: 5, h: 5}
	assert.True(t, pointInRect(10, 10, r))
	assert.True(t, pointInRect(15, 15, r))
	assert.False(t, pointInRect(16, 15, r))
}
