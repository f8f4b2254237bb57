package game

import (
	"log"
	"math/rand"

	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/render"
	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/ui/hud"
	"chosenoffset.com/zonearena/internal/ui/menu"
)

// Manager drives a Controller from a render.Engine: it polls keys once per
// engine tick, routes them to the menu or the session, and keeps the last
// rendered Frame for Draw.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Controller   *Controller
	MainMenu     *menu.MainMenu
	HUD          *hud.HUD
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Keys         input.Bindings

	frame      Frame
	background render.Image
}

// NewManager creates a new game manager in the menu state. The manager is
// the controller's Renderer.
func NewManager(cfg *simulation.Config, r render.Renderer, in render.InputManager, audio AudioSink, rng *rand.Rand) *Manager {
	width, height := int(cfg.Field.Width), int(cfg.Field.Height)
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		MainMenu:     menu.NewMainMenu(r, in, cfg.Keys.Start, width, height),
		HUD:          hud.New(hud.DefaultConfig(), r, width),
		Renderer:     r,
		InputMgr:     in,
		Keys:         cfg.Keys,
	}
	m.Controller = NewController(cfg, input.NewState(), m, audio, rng)
	m.Controller.Show()
	return m
}

// RenderFrame stores the frame for the next Draw.
func (m *Manager) RenderFrame(f Frame) {
	m.frame = f
	m.HUD.SetPlayer(f.Player.Health, f.MaxHealth)
	m.HUD.SetEnemies(f.AliveEnemies())
}

// LastFrame returns the most recently rendered frame.
func (m *Manager) LastFrame() Frame {
	return m.frame
}

// Update updates the game state.
func (m *Manager) Update() error {
	m.pollKeys()

	if m.justPressed(m.Keys.Quit) {
		log.Println("[Manager] Quit requested")
		return render.ErrTerminated
	}
	if m.justPressed(m.Keys.Mute) {
		m.Controller.Apply(CommandMute)
	}

	switch m.Controller.State() {
	case StateMenu:
		if m.MainMenu.Update() {
			m.Controller.Apply(CommandStart)
			// The first frame runs right away, without waiting a tick
			m.Controller.Tick()
		}
	case StateRunning:
		if m.justPressed(m.Keys.Fire) {
			m.Controller.Apply(CommandFire)
		}
		m.Controller.Tick()
	case StateTerminal:
		if m.justPressed(m.Keys.Restart) {
			m.Controller.Apply(CommandRestart)
		}
	}
	return nil
}

// pollKeys copies the held state of every bound key into the controller's input
func (m *Manager) pollKeys() {
	for _, k := range m.Keys.All() {
		m.Controller.Input.Set(k, m.InputMgr.IsKeyPressed(k))
	}
}

func (m *Manager) justPressed(keys []input.Key) bool {
	for _, k := range keys {
		if m.InputMgr.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	if m.Controller.State() == StateMenu {
		m.MainMenu.Draw(screen)
		return
	}
	m.drawFrame(screen, m.frame)
}

// Layout keeps the logical screen at the field size; the engine scales it
// to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
