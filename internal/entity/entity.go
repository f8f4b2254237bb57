// Package entity defines the things that live on the arena field:
// the player, the pursuing enemies, the player's bullets and the safe zone.
// Entities carry data only; the simulation package moves them.
package entity

import "chosenoffset.com/zonearena/internal/core/geom"

// Bullet collision box. Bullets are drawn with the same footprint.
const (
	BulletWidth  = 4.0
	BulletHeight = 10.0
)

// Player is the avatar controlled by the user.
type Player struct {
	Pos    geom.Vec // Top-left corner
	Size   float64  // Side length of the square
	Speed  float64  // Displacement per tick on each pressed axis
	Health float64  // Starts at max, may dip below zero before the terminal check
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y, size, speed, health float64) Player {
	return Player{
		Pos:    geom.Vec{X: x, Y: y},
		Size:   size,
		Speed:  speed,
		Health: health,
	}
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() geom.Rect {
	return geom.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size, H: p.Size}
}

// Center returns the center of the player's square.
func (p *Player) Center() geom.Vec {
	return p.Bounds().Center()
}

// Enemy chases the player until a bullet kills it.
// Dead enemies stay in the session's slice with Alive unset.
type Enemy struct {
	Pos   geom.Vec
	Size  float64
	Alive bool
}

// NewEnemy creates a live enemy at the given position.
func NewEnemy(x, y, size float64) Enemy {
	return Enemy{
		Pos:   geom.Vec{X: x, Y: y},
		Size:  size,
		Alive: true,
	}
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() geom.Rect {
	return geom.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size, H: e.Size}
}

// Bullet travels straight up at a constant rate.
type Bullet struct {
	Pos geom.Vec
	DY  float64 // Vertical displacement per tick (negative = up)
}

// NewBullet creates a bullet at the given position.
func NewBullet(x, y, dy float64) Bullet {
	return Bullet{Pos: geom.Vec{X: x, Y: y}, DY: dy}
}

// Bounds returns the bullet's collision rectangle.
func (b *Bullet) Bounds() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: BulletWidth, H: BulletHeight}
}

// SafeZone is the shrinking circle the player must stay inside.
type SafeZone struct {
	Center     geom.Vec
	Radius     float64
	ShrinkRate float64 // Radius lost per tick
	MinRadius  float64 // Radius never shrinks below this
}

// NewSafeZone creates a safe zone centered at (x, y).
func NewSafeZone(x, y, radius, shrinkRate, minRadius float64) SafeZone {
	return SafeZone{
		Center:     geom.Vec{X: x, Y: y},
		Radius:     radius,
		ShrinkRate: shrinkRate,
		MinRadius:  minRadius,
	}
}

// Contains reports whether p lies inside or on the zone's circle.
func (z *SafeZone) Contains(p geom.Vec) bool {
	return p.Dist(z.Center) <= z.Radius
}
