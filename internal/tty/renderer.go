package tty

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/zonearena/internal/core/geom"
	"chosenoffset.com/zonearena/internal/game"
	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/ui/hud"
)

// Cell glyphs
const (
	runePlayer = '█'
	runeEnemy  = 'X'
	runeBullet = '|'
	runeZone   = '·'
	runeBarOn  = '█'
	runeBarOff = '░'
)

// hudRows is the number of rows above the arena
const hudRows = 2

var (
	colorBackgroundTop    = tcell.NewRGBColor(0, 0, 0x33)
	colorBackgroundBottom = tcell.NewRGBColor(0, 0x33, 0)
	colorZone             = tcell.NewRGBColor(0, 255, 255)
	colorPlayer           = tcell.NewRGBColor(0, 191, 255)
	colorEnemy            = tcell.NewRGBColor(255, 0, 0)
	colorBullet           = tcell.NewRGBColor(255, 255, 0)
	colorHealth           = tcell.NewRGBColor(0, 255, 0)
	colorHealthLost       = tcell.NewRGBColor(255, 0, 0)
)

// Renderer draws frames as character cells, scaling the field to whatever
// the terminal size is at draw time. Field rows start below the HUD.
type Renderer struct {
	screen tcell.Screen
	field  simulation.FieldConfig
	keys   input.Bindings
	hud    *hud.HUD
}

// NewRenderer creates a renderer drawing to screen.
func NewRenderer(screen tcell.Screen, field simulation.FieldConfig, keys input.Bindings) *Renderer {
	return &Renderer{
		screen: screen,
		field:  field,
		keys:   keys,
		hud:    hud.New(nil, nil, 0),
	}
}

// RenderFrame implements game.Renderer.
func (r *Renderer) RenderFrame(f game.Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.drawBackground(w, h)

	switch f.State {
	case game.StateMenu:
		r.drawMenu(w, h)
	case game.StateTerminal:
		r.drawOverlay(w, h, f.Message)
	default:
		r.drawZone(w, h, f.Zone.Center, f.Zone.Radius)
		r.fillRect(w, h, f.Player.Bounds(), runePlayer, colorPlayer)
		for _, b := range f.Bullets {
			r.fillRect(w, h, b.Bounds(), runeBullet, colorBullet)
		}
		for _, e := range f.Enemies {
			if e.Alive {
				r.fillRect(w, h, e.Bounds(), runeEnemy, colorEnemy)
			}
		}
		r.drawHUD(w, f)
	}

	r.screen.Show()
}

// cell maps a field point to a screen cell
func (r *Renderer) cell(w, h int, p geom.Vec) (int, int) {
	x := int(math.Floor(p.X / r.field.Width * float64(w)))
	y := int(math.Floor(p.Y/r.field.Height*float64(h-hudRows))) + hudRows
	return x, y
}

func (r *Renderer) inArena(w, h, x, y int) bool {
	return x >= 0 && x < w && y >= hudRows && y < h
}

// set draws a rune keeping the background colour of the row
func (r *Renderer) set(x, y int, ch rune, fg tcell.Color) {
	_, _, style, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, ch, nil, style.Foreground(fg))
}

func (r *Renderer) drawBackground(w, h int) {
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		style := tcell.StyleDefault.Background(lerpColor(colorBackgroundTop, colorBackgroundBottom, t))
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func lerpColor(a, b tcell.Color, t float64) tcell.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return int32(math.Round(float64(x) + float64(y-x)*t))
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// fillRect covers every cell the rectangle touches, at least one
func (r *Renderer) fillRect(w, h int, rect geom.Rect, ch rune, fg tcell.Color) {
	x0, y0 := r.cell(w, h, geom.Vec{X: rect.X, Y: rect.Y})
	x1, y1 := r.cell(w, h, geom.Vec{X: rect.Right(), Y: rect.Bottom()})
	if x1 > x0 {
		x1--
	}
	if y1 > y0 {
		y1--
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.inArena(w, h, x, y) {
				r.set(x, y, ch, fg)
			}
		}
	}
}

// drawZone plots the circle outline with enough steps to leave no gaps
func (r *Renderer) drawZone(w, h int, center geom.Vec, radius float64) {
	cellW := r.field.Width / float64(w)
	steps := int(2*math.Pi*radius/cellW) + 16
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		p := geom.Vec{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
		x, y := r.cell(w, h, p)
		if r.inArena(w, h, x, y) {
			r.set(x, y, runeZone, colorZone)
		}
	}
}

func (r *Renderer) drawHUD(w int, f game.Frame) {
	r.hud.SetPlayer(f.Player.Health, f.MaxHealth)
	r.hud.SetEnemies(f.AliveEnemies())

	line := r.hud.HealthText() + "   " + r.hud.EnemiesText()
	r.drawText(1, 0, line, tcell.ColorWhite)

	// 20-cell bar, one cell per 10 pixels of the 200px window bar
	const barCells = 20
	filled := int(math.Round(float64(r.hud.FillWidth()) / 10))
	for i := 0; i < barCells && 1+i < w; i++ {
		if i < filled {
			r.set(1+i, 1, runeBarOn, colorHealth)
		} else {
			r.set(1+i, 1, runeBarOff, colorHealthLost)
		}
	}
}

func (r *Renderer) drawText(x, y int, s string, fg tcell.Color) {
	for _, ch := range s {
		r.set(x, y, ch, fg)
		x++
	}
}

func (r *Renderer) drawCentered(w, y int, s string, fg tcell.Color) {
	r.drawText((w-len([]rune(s)))/2, y, s, fg)
}

func (r *Renderer) drawMenu(w, h int) {
	mid := h / 2
	r.drawCentered(w, mid-3, "ZONE ARENA", colorZone)
	r.drawCentered(w, mid-1, "Stay inside the circle. Clear the arena.", tcell.ColorWhite)
	r.drawCentered(w, mid+1, fmt.Sprintf("[ Press %s to start ]", keyName(r.keys.Start)), colorHealth)
	r.drawCentered(w, mid+3, fmt.Sprintf("Arrows to move, %s to fire, %s to quit",
		keyName(r.keys.Fire), keyName(r.keys.Quit)), tcell.ColorGray)
}

func (r *Renderer) drawOverlay(w, h int, message string) {
	mid := h / 2
	r.drawCentered(w, mid-1, message, tcell.ColorWhite)
	r.drawCentered(w, mid+1, fmt.Sprintf("Press %s to restart", keyName(r.keys.Restart)), tcell.ColorWhite)
}

// keyName labels the first key of a binding for on-screen hints
func keyName(keys []input.Key) string {
	if len(keys) == 0 {
		return "?"
	}
	switch k := keys[0]; k {
	case "":
		return "?"
	case input.KeySpace:
		return "Space"
	case input.KeyEscape:
		return "Esc"
	default:
		return strings.ToUpper(string(k[:1])) + string(k[1:])
	}
}
