package game

import (
	"errors"
	"log"
	"math/rand"

	"chosenoffset.com/zonearena/internal/entity"
	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/sound"
)

// State is the controller's position in the session lifecycle.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateTerminal
)

// String returns the state's name for logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Outcome tells how a finished session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// Overlay messages shown on the terminal frame
const (
	MessageLose = "Game Over"
	MessageWin  = "You Win!"
)

// Errors returned for controls used in the wrong state.
var (
	ErrNotRunning  = errors.New("game is not running")
	ErrNotTerminal = errors.New("game has not ended")
)

// Frame is everything a renderer needs to draw one tick.
// Slices are copies; renderers may keep a Frame after the call returns.
type Frame struct {
	Tick      int
	State     State
	Outcome   Outcome
	Message   string
	Player    entity.Player
	Enemies   []entity.Enemy
	Bullets   []entity.Bullet
	Zone      entity.SafeZone
	MaxHealth float64
	Field     simulation.FieldConfig
}

// AliveEnemies counts the live enemies in the frame.
func (f *Frame) AliveEnemies() int {
	n := 0
	for i := range f.Enemies {
		if f.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// Renderer draws frames. It is called exactly once per tick.
type Renderer interface {
	RenderFrame(f Frame)
}

// AudioSink plays one-shot effects without blocking. Triggering an effect that
// is still playing restarts it from the beginning.
type AudioSink interface {
	Play(e sound.Effect)
}

// MusicPlayer is implemented by audio sinks that also drive background music.
type MusicPlayer interface {
	PlayMusic()
	RewindMusic()
}

// Muter is implemented by audio sinks that can be silenced at runtime.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Controller runs the per-tick simulation and the menu/running/terminal
// state machine. All methods must be called from the same goroutine.
type Controller struct {
	Config   *simulation.Config
	Input    *input.State
	Session  *simulation.Session
	Renderer Renderer
	Audio    AudioSink

	rng     *rand.Rand
	state   State
	outcome Outcome
}

// NewController creates a controller in the menu state. The session is
// allocated immediately so renderers always have something to show.
func NewController(cfg *simulation.Config, in *input.State, r Renderer, audio AudioSink, rng *rand.Rand) *Controller {
	return &Controller{
		Config:   cfg,
		Input:    in,
		Session:  simulation.NewSession(cfg, rng),
		Renderer: r,
		Audio:    audio,
		rng:      rng,
		state:    StateMenu,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Outcome returns how the last session ended, or OutcomeNone while it runs.
func (c *Controller) Outcome() Outcome {
	return c.outcome
}

// Playing reports whether ticks and fire input are being processed.
func (c *Controller) Playing() bool {
	return c.state == StateRunning
}

// Start resets every entity and begins a new running session.
func (c *Controller) Start() {
	c.Session.Reset(c.rng)
	c.state = StateRunning
	c.outcome = OutcomeNone
	if m, ok := c.Audio.(MusicPlayer); ok {
		m.PlayMusic()
	}
	log.Printf("[Controller] Session started with %d enemies", len(c.Session.Enemies))
}

// Restart returns a finished session to the menu. Entities are left as they
// were; the next Start resets them.
func (c *Controller) Restart() error {
	if c.state != StateTerminal {
		return ErrNotTerminal
	}
	c.state = StateMenu
	if m, ok := c.Audio.(MusicPlayer); ok {
		m.RewindMusic()
	}
	return nil
}

// Fire shoots one bullet from the player.
func (c *Controller) Fire() error {
	if c.state != StateRunning {
		return ErrNotRunning
	}
	simulation.Fire(c.Session)
	c.play(sound.Fire)
	return nil
}

// ToggleMute flips the audio sink's mute state in any lifecycle state.
// It reports false when the sink cannot be muted.
func (c *Controller) ToggleMute() bool {
	m, ok := c.Audio.(Muter)
	if !ok {
		return false
	}
	m.SetMuted(!m.Muted())
	return true
}

// Tick advances a running session by one frame and renders it. It returns
// whether another tick should be scheduled. The terminal conditions are
// checked first, against the health and enemies left by the previous tick;
// on a terminal condition one final frame is rendered with the overlay and
// no engine runs.
func (c *Controller) Tick() bool {
	if c.state != StateRunning {
		return false
	}

	s := c.Session
	switch {
	case s.PlayerDead():
		c.finish(OutcomeLose)
		return false
	case s.Cleared():
		c.finish(OutcomeWin)
		return false
	}

	simulation.ShrinkZone(s)
	simulation.MovePlayer(s, c.Input.Snapshot(c.Config.Keys))
	simulation.PursueAndStrike(s)
	simulation.AdvanceBullets(s)
	simulation.ResolveHits(s, func(int) { c.play(sound.EnemyDeath) })
	s.Tick++

	c.render()
	return true
}

func (c *Controller) finish(o Outcome) {
	c.state = StateTerminal
	c.outcome = o
	log.Printf("[Controller] Session ended after %d ticks: %s (health %.1f, %d enemies left)",
		c.Session.Tick, c.Message(), c.Session.Player.Health, c.Session.AliveEnemies())
	c.render()
}

// Message returns the overlay text for the terminal state.
func (c *Controller) Message() string {
	switch c.outcome {
	case OutcomeWin:
		return MessageWin
	case OutcomeLose:
		return MessageLose
	default:
		return ""
	}
}

// Frame captures the current session for rendering.
func (c *Controller) Frame() Frame {
	s := c.Session
	return Frame{
		Tick:      s.Tick,
		State:     c.state,
		Outcome:   c.outcome,
		Message:   c.Message(),
		Player:    s.Player,
		Enemies:   append([]entity.Enemy(nil), s.Enemies...),
		Bullets:   append([]entity.Bullet(nil), s.Bullets...),
		Zone:      s.Zone,
		MaxHealth: c.Config.Player.Health,
		Field:     c.Config.Field,
	}
}

func (c *Controller) render() {
	if c.Renderer != nil {
		c.Renderer.RenderFrame(c.Frame())
	}
}

func (c *Controller) play(e sound.Effect) {
	if c.Audio != nil {
		c.Audio.Play(e)
	}
}
