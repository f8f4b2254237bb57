package game

import (
	"context"
	"errors"
	"log"
	"time"
)

// Command is a discrete control delivered to the loop by a frontend.
type Command int

const (
	CommandStart Command = iota
	CommandFire
	CommandRestart
	CommandMute
	CommandShow // Redraw the current frame, e.g. after a resize
)

// Apply executes a command against the controller. Commands that do not fit
// the current state are ignored.
func (c *Controller) Apply(cmd Command) {
	var err error
	switch cmd {
	case CommandStart:
		if c.state != StateMenu {
			return
		}
		c.Start()
	case CommandFire:
		err = c.Fire()
	case CommandRestart:
		if err = c.Restart(); err == nil {
			c.Show()
		}
	case CommandMute:
		c.ToggleMute()
	case CommandShow:
		c.Show()
	}
	if err != nil && !errors.Is(err, ErrNotRunning) && !errors.Is(err, ErrNotTerminal) {
		log.Printf("[Loop] Command %d failed: %v", cmd, err)
	}
}

// Show renders the current frame outside of a tick, for menu screens.
func (c *Controller) Show() {
	c.render()
}

// Run is the frame-driven loop for frontends without their own game loop.
// Each value received on frames is one display refresh: while the session is
// running it triggers exactly one tick, otherwise it is ignored until a start
// command arrives. Commands are applied between ticks, never during one.
// Run returns ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, c *Controller, frames <-chan time.Time, commands <-chan Command) error {
	c.Show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-commands:
			c.Apply(cmd)
		case <-frames:
			if c.Playing() {
				c.Tick()
			}
		}
	}
}
