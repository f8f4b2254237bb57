package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/zonearena/internal/entity"
)

func TestApplyIgnoresOutOfStateCommands(t *testing.T) {
	f := newFixture(t)

	f.c.Apply(CommandFire)
	f.c.Apply(CommandRestart)
	assert.Equal(t, StateMenu, f.c.State())
	assert.Empty(t, f.audio.effects)

	f.c.Apply(CommandStart)
	require.Equal(t, StateRunning, f.c.State())
	f.c.Session.Enemies = []entity.Enemy{entity.NewEnemy(0, 0, 20)}
	f.c.Session.Player.Pos.X = 123

	f.c.Apply(CommandStart)
	assert.Equal(t, 123.0, f.c.Session.Player.Pos.X, "start while running does not reset")

	f.c.Apply(CommandFire)
	assert.Len(t, f.c.Session.Bullets, 1)
}

func TestApplyRestartShowsMenu(t *testing.T) {
	f := newFixture(t)
	f.startWith()
	f.c.Tick() // Win
	frames := len(f.r.frames)

	f.c.Apply(CommandRestart)

	assert.Equal(t, StateMenu, f.c.State())
	require.Len(t, f.r.frames, frames+1)
	assert.Equal(t, StateMenu, f.r.last().State)
}

func TestRunTicksOncePerFrame(t *testing.T) {
	f := newFixture(t)
	frames := make(chan time.Time)
	commands := make(chan Command)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, f.c, frames, commands) }()

	// Frames in the menu are ignored
	frames <- time.Now()
	commands <- CommandStart
	for i := 0; i < 3; i++ {
		frames <- time.Now()
	}
	commands <- CommandFire

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)

	// One menu frame from Run itself, then three ticks
	require.Len(t, f.r.frames, 4)
	assert.Equal(t, StateMenu, f.r.frames[0].State)
	assert.Equal(t, 3, f.r.last().Tick)
	assert.Len(t, f.c.Session.Bullets, 1)
}

func TestRunStopsTickingAfterTerminal(t *testing.T) {
	f := newFixture(t)
	f.startWith() // No enemies: the first tick wins
	frames := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, f.c, frames, nil) }()

	for i := 0; i < 4; i++ {
		frames <- time.Now()
	}
	cancel()
	<-done

	// Initial frame plus the single terminal frame
	require.Len(t, f.r.frames, 2)
	assert.Equal(t, StateTerminal, f.r.last().State)
	assert.Equal(t, OutcomeWin, f.c.Outcome())
}

type mutingAudio struct {
	recordingAudio
	muted bool
}

func (a *mutingAudio) SetMuted(muted bool) { a.muted = muted }
func (a *mutingAudio) Muted() bool         { return a.muted }

func TestApplyMuteTogglesSink(t *testing.T) {
	f := newFixture(t)
	audio := &mutingAudio{}
	f.c.Audio = audio

	f.c.Apply(CommandMute)
	assert.True(t, audio.muted)
	assert.Equal(t, StateMenu, f.c.State())

	f.c.Apply(CommandMute)
	assert.False(t, audio.muted)
}

func TestToggleMuteWithoutMuter(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.c.ToggleMute())
}

func TestApplyShowRendersWithoutTicking(t *testing.T) {
	f := newFixture(t)

	f.c.Apply(CommandShow)

	require.Len(t, f.r.frames, 1)
	assert.Equal(t, StateMenu, f.r.last().State)
	assert.Equal(t, 0, f.r.last().Tick)
}
