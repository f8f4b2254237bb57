// Package rendertest provides recording implementations of the render
// interfaces for tests that draw without a graphics backend.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/render"
)

// Call is one recorded drawing operation.
type Call struct {
	Op      string // FillRect, StrokeRect, FillCircle, StrokeCircle or DrawText
	X, Y    float32
	W, H    float32 // Radius is stored in W for circles
	Stroke  float32
	Text    string
	Scale   float64
	Color   color.Color
	Surface *Image
}

// Renderer records every call made through render.Renderer.
type Renderer struct {
	Calls  []Call
	Images []*Image
}

// NewRenderer returns an empty recorder.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) NewImage(width, height int) render.Image {
	img := NewImage(width, height)
	r.Images = append(r.Images, img)
	return img
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "FillRect", X: x, Y: y, W: width, H: height, Color: clr, Surface: surface(dst)})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "StrokeRect", X: x, Y: y, W: width, H: height, Stroke: strokeWidth, Color: clr, Surface: surface(dst)})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "FillCircle", X: x, Y: y, W: radius, Color: clr, Surface: surface(dst)})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "StrokeCircle", X: x, Y: y, W: radius, Stroke: strokeWidth, Color: clr, Surface: surface(dst)})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Calls = append(r.Calls, Call{Op: "DrawText", X: float32(x), Y: float32(y), Text: text, Scale: scale, Color: clr, Surface: surface(dst)})
}

// MeasureText assumes a fixed advance of 8px per rune at scale 1.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len([]rune(text))*8) * scale), int(16 * scale)
}

// Ops returns the recorded calls with the given operation name.
func (r *Renderer) Ops(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every drawn string in call order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, c := range r.Ops("DrawText") {
		out = append(out, c.Text)
	}
	return out
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() {
	r.Calls = nil
}

func surface(dst render.Image) *Image {
	img, _ := dst.(*Image)
	return img
}

// Image is an in-memory render.Image that remembers fills and blits.
type Image struct {
	W, H     int
	Filled   color.Color
	Drawn    []*Image // Sources passed to DrawImage, in order
	Disposed bool
}

// NewImage returns a blank image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

func (i *Image) Size() (width, height int) {
	return i.W, i.H
}

func (i *Image) Fill(clr color.Color) {
	i.Filled = clr
}

func (i *Image) Clear() {
	i.Filled = nil
	i.Drawn = nil
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Drawn = append(i.Drawn, surface(src))
}

func (i *Image) Dispose() {
	i.Disposed = true
}

// Input is a scripted render.InputManager.
type Input struct {
	Pressed     map[input.Key]bool
	JustPressed map[input.Key]bool
	CursorX     int
	CursorY     int
	MouseDown   bool
}

// NewInput returns an input manager with nothing pressed.
func NewInput() *Input {
	return &Input{
		Pressed:     make(map[input.Key]bool),
		JustPressed: make(map[input.Key]bool),
	}
}

func (in *Input) IsKeyPressed(key input.Key) bool {
	return in.Pressed[key]
}

func (in *Input) IsKeyJustPressed(key input.Key) bool {
	return in.JustPressed[key]
}

func (in *Input) GetCursorPosition() (x, y int) {
	return in.CursorX, in.CursorY
}

func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.MouseDown
}

// Tap presses a key for one frame: it is held and just pressed.
func (in *Input) Tap(key input.Key) {
	in.Pressed[key] = true
	in.JustPressed[key] = true
}

// EndFrame clears the just-pressed edges, as a backend does between frames.
func (in *Input) EndFrame() {
	in.JustPressed = make(map[input.Key]bool)
}
