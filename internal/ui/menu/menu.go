package menu

import (
	"image/color"

	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/render"
)

// Start button geometry, centred horizontally on the screen
const (
	buttonWidth  = 200
	buttonHeight = 50
	buttonTop    = 300
)

// MainMenu represents the title screen shown before every session.
type MainMenu struct {
	renderer       render.Renderer
	input          render.InputManager
	startKeys      []input.Key
	screenWidth    int
	screenHeight   int
	lastMouseClick bool
}

// NewMainMenu creates a new main menu. Any of startKeys starts a session.
func NewMainMenu(r render.Renderer, in render.InputManager, startKeys []input.Key, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		input:        in,
		startKeys:    startKeys,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Update updates the menu state based on user input.
// Returns true when the player asked to start.
func (m *MainMenu) Update() (selected bool) {
	mouseX, mouseY := m.input.GetCursorPosition()
	mousePressed := m.input.IsMouseButtonPressed(render.MouseButtonLeft)

	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !m.lastMouseClick
	m.lastMouseClick = mousePressed

	if mouseClicked && pointInRect(mouseX, mouseY, m.startButton()) {
		return true
	}

	for _, k := range m.startKeys {
		if m.input.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	// Clear screen with dark background
	screen.Fill(color.RGBA{0, 0, 34, 255})

	// Draw title
	titleColor := color.RGBA{0, 255, 255, 255}
	m.drawCentered(screen, "ZONE ARENA", 140, titleColor, 3.0)
	m.drawCentered(screen, "Stay inside the circle. Clear the arena.", 210, color.RGBA{200, 200, 255, 255}, 1.2)

	// Draw start button
	btn := m.startButton()
	m.renderer.FillRect(screen, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), color.RGBA{0, 120, 60, 255})
	m.renderer.StrokeRect(screen, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), 2, color.RGBA{0, 255, 0, 255})
	_, th := m.renderer.MeasureText("Start", 1.5)
	m.drawCentered(screen, "Start", btn.y+(btn.h-th)/2, color.White, 1.5)

	// Draw instructions
	instructionY := m.screenHeight - 80
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.drawCentered(screen, "Arrow keys to move, Space to fire", instructionY, instructionColor, 1.0)
	m.drawCentered(screen, "Press Enter or click Start to begin", instructionY+24, instructionColor, 1.0)
}

// drawCentered draws text horizontally centred at the given top edge
func (m *MainMenu) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	w, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, (m.screenWidth-w)/2, y, clr, scale)
}

func (m *MainMenu) startButton() rect {
	return rect{x: (m.screenWidth - buttonWidth) / 2, y: buttonTop, w: buttonWidth, h: buttonHeight}
}

// Helper types and functions

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
