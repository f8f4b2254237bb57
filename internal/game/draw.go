package game

import (
	"fmt"
	"image/color"
	"strings"

	"chosenoffset.com/zonearena/internal/entity"
	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/render"
)

var (
	backgroundTop    = color.RGBA{0, 0, 0x33, 255}
	backgroundBottom = color.RGBA{0, 0x33, 0, 255}
	zoneColor        = color.RGBA{0, 255, 255, 255}
	playerColor      = color.RGBA{0, 191, 255, 255} // deepskyblue
	enemyColor       = color.RGBA{255, 0, 0, 255}
	bulletColor      = color.RGBA{255, 255, 0, 255}
	overlayColor     = color.RGBA{0, 0, 0, 153} // Black at 60%, premultiplied
)

const zoneStroke = 3

// drawFrame renders one session frame. A terminal frame shows only the
// background and the outcome overlay.
func (m *Manager) drawFrame(screen render.Image, f Frame) {
	w, h := screen.Size()

	// Gradient is drawn once and reused while the screen size holds
	if m.background == nil || needsResize(m.background, w, h) {
		if m.background != nil {
			m.background.Dispose()
		}
		m.background = m.Renderer.NewImage(w, h)
		drawGradient(m.Renderer, m.background, backgroundTop, backgroundBottom)
	}
	screen.DrawImage(m.background, nil)

	if f.State == StateTerminal {
		m.drawOverlay(screen, f.Message)
		return
	}

	m.drawZone(screen, f.Zone)
	m.drawPlayer(screen, f.Player)
	m.drawBullets(screen, f.Bullets)
	m.drawEnemies(screen, f.Enemies)
	m.HUD.Draw(screen)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

// drawGradient fills dst with one-pixel rows blending top into bottom
func drawGradient(r render.Renderer, dst render.Image, top, bottom color.RGBA) {
	w, h := dst.Size()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		r.FillRect(dst, 0, float32(y), float32(w), 1, lerpColor(top, bottom, t))
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func (m *Manager) drawZone(screen render.Image, z entity.SafeZone) {
	m.Renderer.StrokeCircle(screen, float32(z.Center.X), float32(z.Center.Y), float32(z.Radius), zoneStroke, zoneColor)
}

func (m *Manager) drawPlayer(screen render.Image, p entity.Player) {
	m.Renderer.FillRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), float32(p.Size), playerColor)
}

func (m *Manager) drawBullets(screen render.Image, bullets []entity.Bullet) {
	for _, b := range bullets {
		m.Renderer.FillRect(screen, float32(b.Pos.X), float32(b.Pos.Y), entity.BulletWidth, entity.BulletHeight, bulletColor)
	}
}

func (m *Manager) drawEnemies(screen render.Image, enemies []entity.Enemy) {
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		m.Renderer.FillRect(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Size), float32(e.Size), enemyColor)
	}
}

// drawOverlay dims the screen and shows the outcome with the restart hint
func (m *Manager) drawOverlay(screen render.Image, message string) {
	w, h := screen.Size()
	m.Renderer.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor)

	mw, _ := m.Renderer.MeasureText(message, 3.0)
	m.Renderer.DrawText(screen, message, (w-mw)/2, h/2-42, color.White, 3.0)

	hint := m.restartHint()
	hw, _ := m.Renderer.MeasureText(hint, 1.5)
	m.Renderer.DrawText(screen, hint, (w-hw)/2, h/2+32, color.White, 1.5)
}

func (m *Manager) restartHint() string {
	if len(m.Keys.Restart) == 0 {
		return ""
	}
	return fmt.Sprintf("Press %s to restart", keyLabel(m.Keys.Restart[0]))
}

// keyLabel names a key for on-screen hints
func keyLabel(k input.Key) string {
	switch k {
	case "":
		return "?"
	case input.KeySpace:
		return "Space"
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
