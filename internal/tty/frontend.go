package tty

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/zonearena/internal/game"
	"chosenoffset.com/zonearena/internal/input"
)

// Frontend feeds terminal key events to a controller and paces its frames.
type Frontend struct {
	Screen     tcell.Screen
	Controller *game.Controller
	Keys       input.Bindings

	holds *holdTracker
}

// NewFrontend wires screen input to the controller's input state.
func NewFrontend(screen tcell.Screen, c *game.Controller, keys input.Bindings, hold time.Duration) *Frontend {
	return &Frontend{
		Screen:     screen,
		Controller: c,
		Keys:       keys,
		holds:      newHoldTracker(c.Input, hold),
	}
}

// handleEvent updates held keys and returns the commands the event
// triggers. quit is true when the player asked to leave.
func (f *Frontend) handleEvent(ev tcell.Event, now time.Time) (cmds []game.Command, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return nil, true
		}
		k, ok := keyFromEvent(ev)
		if !ok {
			return nil, false
		}
		f.holds.press(k, now)

		if bound(f.Keys.Quit, k) {
			return nil, true
		}
		if bound(f.Keys.Start, k) {
			cmds = append(cmds, game.CommandStart)
		}
		if bound(f.Keys.Fire, k) {
			cmds = append(cmds, game.CommandFire)
		}
		if bound(f.Keys.Restart, k) {
			cmds = append(cmds, game.CommandRestart)
		}
		if bound(f.Keys.Mute, k) {
			cmds = append(cmds, game.CommandMute)
		}
	case *tcell.EventResize:
		f.Screen.Sync()
		cmds = append(cmds, game.CommandShow)
	}
	return cmds, false
}

func bound(keys []input.Key, k input.Key) bool {
	for _, b := range keys {
		if b == k {
			return true
		}
	}
	return false
}

// Run polls terminal events and drives game.Run at fps frames per second
// until the player quits (nil) or ctx ends (ctx.Err()).
func (f *Frontend) Run(ctx context.Context, fps int) error {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.Screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-loopCtx.Done():
				return
			}
		}
	}()

	frames := make(chan time.Time)
	commands := make(chan game.Command)
	done := make(chan error, 1)
	go func() { done <- game.Run(loopCtx, f.Controller, frames, commands) }()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	log.Printf("[Frontend] Running at %d FPS", fps)
	for {
		select {
		case <-ctx.Done():
			<-done
			return ctx.Err()
		case ev := <-events:
			cmds, quit := f.handleEvent(ev, time.Now())
			if quit {
				cancel()
				<-done
				log.Println("[Frontend] Quit requested")
				return nil
			}
			for _, cmd := range cmds {
				if err := send(loopCtx, commands, cmd); err != nil {
					return f.wait(ctx, done)
				}
			}
		case t := <-ticker.C:
			f.holds.expire(t)
			if err := send(loopCtx, frames, t); err != nil {
				return f.wait(ctx, done)
			}
		}
	}
}

// wait collects the loop's exit after an aborted send
func (f *Frontend) wait(ctx context.Context, done <-chan error) error {
	err := <-done
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func send[T any](ctx context.Context, ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
