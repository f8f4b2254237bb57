// Package hud provides the heads-up display drawn over the arena: the
// player's health as text and a bar, and the number of enemies left.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/zonearena/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowHealth     bool   `yaml:"show_health"`      // Show "Health: N%"
	ShowHealthBar  bool   `yaml:"show_health_bar"`  // Show the health bar
	ShowEnemyCount bool   `yaml:"show_enemy_count"` // Show remaining enemies
	Position       string `yaml:"position"`         // "top-left" or "top-right"
}

// DefaultConfig returns the classic arena HUD
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowHealth:     true,
		ShowHealthBar:  true,
		ShowEnemyCount: true,
		Position:       "top-left",
	}
}

// Layout constants, in screen pixels
const (
	padding    = 20
	textTop    = 14 // 16px text whose baseline sits at y=30
	lineHeight = 20
	barTop     = 60
	barWidth   = 200
	barHeight  = 20
	barStroke  = 1
	textScale  = 1.0
)

var (
	textColor    = color.White
	barBackColor = color.RGBA{255, 0, 0, 255}
	barFillColor = color.RGBA{0, 255, 0, 255}
	barEdgeColor = color.White
)

// HUD manages the heads-up display
type HUD struct {
	config      *HUDConfig
	renderer    render.Renderer
	screenWidth int

	// Data sources
	health    float64
	maxHealth float64
	enemies   int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:      config,
		renderer:    r,
		screenWidth: screenWidth,
		maxHealth:   100,
	}
}

// SetPlayer sets the health values to display
func (h *HUD) SetPlayer(health, maxHealth float64) {
	h.health = health
	if maxHealth > 0 {
		h.maxHealth = maxHealth
	}
}

// SetEnemies updates the displayed enemy count
func (h *HUD) SetEnemies(alive int) {
	h.enemies = alive
}

// SetScreenWidth updates the screen width used for right-aligned layouts
func (h *HUD) SetScreenWidth(width int) {
	h.screenWidth = width
}

// HealthText returns the health line. Health is floored, so a fractional
// health below zero shows as a negative percentage.
func (h *HUD) HealthText() string {
	return fmt.Sprintf("Health: %d%%", int(math.Floor(h.health)))
}

// EnemiesText returns the remaining-enemies line.
func (h *HUD) EnemiesText() string {
	return fmt.Sprintf("Enemies: %d", h.enemies)
}

// FillWidth returns the width of the health bar's fill, within [0, barWidth].
func (h *HUD) FillWidth() float32 {
	w := barWidth * h.health / h.maxHealth
	return float32(math.Max(0, math.Min(barWidth, w)))
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image) {
	x := h.calculatePosition()
	y := textTop

	if h.config.ShowHealth {
		h.renderer.DrawText(screen, h.HealthText(), x, y, textColor, textScale)
		y += lineHeight
	}
	if h.config.ShowEnemyCount {
		h.renderer.DrawText(screen, h.EnemiesText(), x, y, textColor, textScale)
	}
	if h.config.ShowHealthBar {
		h.drawHealthBar(screen, x, barTop)
	}
}

// calculatePosition returns the left edge of the HUD column
func (h *HUD) calculatePosition() int {
	if h.config.Position == "top-right" {
		return h.screenWidth - barWidth - padding
	}
	return padding
}

// drawHealthBar draws red background, green fill and a white outline
func (h *HUD) drawHealthBar(screen render.Image, x, y int) {
	fx, fy := float32(x), float32(y)
	h.renderer.FillRect(screen, fx, fy, barWidth, barHeight, barBackColor)
	if w := h.FillWidth(); w > 0 {
		h.renderer.FillRect(screen, fx, fy, w, barHeight, barFillColor)
	}
	h.renderer.StrokeRect(screen, fx, fy, barWidth, barHeight, barStroke, barEdgeColor)
}
