package game

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/zonearena/internal/entity"
	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/render"
	"chosenoffset.com/zonearena/internal/render/rendertest"
	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/sound"
)

type managerFixture struct {
	m     *Manager
	r     *rendertest.Renderer
	in    *rendertest.Input
	audio *recordingAudio
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	f := &managerFixture{
		r:     rendertest.NewRenderer(),
		in:    rendertest.NewInput(),
		audio: &recordingAudio{},
	}
	f.m = NewManager(simulation.DefaultConfig(), f.r, f.in, f.audio, rand.New(rand.NewSource(7)))
	return f
}

// frame runs one engine tick and clears the just-pressed edges
func (f *managerFixture) frame(t *testing.T) {
	t.Helper()
	require.NoError(t, f.m.Update())
	f.in.EndFrame()
}

func TestManagerStartsInMenu(t *testing.T) {
	f := newManagerFixture(t)

	assert.Equal(t, StateMenu, f.m.Controller.State())
	assert.Equal(t, StateMenu, f.m.LastFrame().State)

	w, h := f.m.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestManagerEnterStartsAndTicks(t *testing.T) {
	f := newManagerFixture(t)

	f.in.Tap(input.KeyEnter)
	f.frame(t)

	assert.Equal(t, StateRunning, f.m.Controller.State())
	assert.Equal(t, 1, f.m.LastFrame().Tick)
	assert.Equal(t, []string{"play"}, f.audio.music)

	f.frame(t)
	assert.Equal(t, 2, f.m.LastFrame().Tick)
}

func TestManagerPollsHeldKeys(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEnter)
	f.frame(t)
	f.m.Controller.Session.Enemies = []entity.Enemy{entity.NewEnemy(0, 0, 20)}
	x := f.m.Controller.Session.Player.Pos.X

	f.in.Pressed[input.KeyArrowRight] = true
	f.frame(t)
	f.frame(t)
	assert.InDelta(t, x+6, f.m.Controller.Session.Player.Pos.X, 1e-9)

	f.in.Pressed[input.KeyArrowRight] = false
	f.frame(t)
	assert.InDelta(t, x+6, f.m.Controller.Session.Player.Pos.X, 1e-9)
}

func TestManagerFiresOnKeyEdge(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEnter)
	f.frame(t)

	f.in.Tap(input.KeySpace)
	f.frame(t)
	// Held space does not auto-fire
	f.frame(t)

	assert.Equal(t, 1, f.audio.count(sound.Fire))
}

func TestManagerRestartReturnsToMenu(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEnter)
	f.frame(t)
	f.m.Controller.Session.Enemies = nil

	f.frame(t)
	require.Equal(t, StateTerminal, f.m.Controller.State())
	assert.Equal(t, MessageWin, f.m.LastFrame().Message)

	// Terminal frames do not tick
	tick := f.m.LastFrame().Tick
	f.frame(t)
	assert.Equal(t, tick, f.m.LastFrame().Tick)

	f.in.Tap(input.KeyR)
	f.frame(t)
	assert.Equal(t, StateMenu, f.m.Controller.State())
	assert.Equal(t, []string{"play", "rewind"}, f.audio.music)
}

func TestManagerQuit(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEscape)
	assert.ErrorIs(t, f.m.Update(), render.ErrTerminated)
}

func TestManagerDrawMenu(t *testing.T) {
	f := newManagerFixture(t)
	f.m.Draw(rendertest.NewImage(800, 600))

	assert.Contains(t, f.r.Texts(), "ZONE ARENA")
	assert.Empty(t, f.r.Ops("StrokeCircle"))
}

func TestManagerDrawRunningFrame(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEnter)
	f.frame(t)
	s := f.m.Controller.Session
	s.Enemies[0].Alive = false
	f.m.Controller.Apply(CommandFire)
	f.m.Controller.Show()
	f.r.Reset()

	screen := rendertest.NewImage(800, 600)
	f.m.Draw(screen)

	circles := f.r.Ops("StrokeCircle")
	require.Len(t, circles, 1)
	assert.Equal(t, float32(400), circles[0].X)
	assert.Equal(t, float32(3), circles[0].Stroke)

	var player, enemies, bullets int
	for _, c := range f.r.Ops("FillRect") {
		if c.Surface != screen {
			continue
		}
		switch c.Color {
		case playerColor:
			player++
		case enemyColor:
			if c.W == 20 { // The health bar background is red too
				enemies++
			}
		case bulletColor:
			bullets++
		}
	}
	assert.Equal(t, 1, player)
	assert.Equal(t, 9, enemies, "dead enemies are not drawn")
	assert.Equal(t, 1, bullets)
	assert.Contains(t, f.r.Texts(), "Enemies: 9")
	require.Len(t, screen.Drawn, 1, "background blit")
}

func TestManagerDrawTerminalOverlay(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEnter)
	f.frame(t)
	f.m.Controller.Session.Player.Health = 0
	f.frame(t)
	f.r.Reset()

	f.m.Draw(rendertest.NewImage(800, 600))

	assert.Equal(t, []string{MessageLose, "Press R to restart"}, f.r.Texts())
	fills := f.r.Ops("FillRect")
	require.NotEmpty(t, fills)
	assert.Equal(t, color.Color(overlayColor), fills[len(fills)-1].Color)
	assert.Empty(t, f.r.Ops("StrokeCircle"))
}

func TestBackgroundIsCached(t *testing.T) {
	f := newManagerFixture(t)
	f.in.Tap(input.KeyEnter)
	f.frame(t)

	f.m.Draw(rendertest.NewImage(800, 600))
	f.m.Draw(rendertest.NewImage(800, 600))
	assert.Len(t, f.r.Images, 1)

	f.m.Draw(rendertest.NewImage(400, 300))
	require.Len(t, f.r.Images, 2)
	assert.True(t, f.r.Images[0].Disposed)
}

func TestLerpColorEnds(t *testing.T) {
	assert.Equal(t, backgroundTop, lerpColor(backgroundTop, backgroundBottom, 0))
	assert.Equal(t, backgroundBottom, lerpColor(backgroundTop, backgroundBottom, 1))
}

func TestKeyLabel(t *testing.T) {
	assert.Equal(t, "R", keyLabel(input.KeyR))
	assert.Equal(t, "Space", keyLabel(input.KeySpace))
	assert.Equal(t, "Enter", keyLabel(input.KeyEnter))
}
