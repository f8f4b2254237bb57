package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/zonearena/internal/core/geom"
)

func TestShrinkZoneShrinksByRate(t *testing.T) {
	s := newTestSession(t)

	hurt := ShrinkZone(s)

	assert.False(t, hurt)
	assert.InDelta(t, 299.9, s.Zone.Radius, 1e-9)
	assert.Equal(t, 100.0, s.Player.Health)
}

func TestShrinkZoneNeverBelowFloor(t *testing.T) {
	s := newTestSession(t)
	prev := s.Zone.Radius

	for i := 0; i < 5000; i++ {
		ShrinkZone(s)
		assert.LessOrEqual(t, s.Zone.Radius, prev, "radius is non-increasing")
		assert.GreaterOrEqual(t, s.Zone.Radius, 30.0, "radius respects its floor")
		prev = s.Zone.Radius
	}
	assert.Equal(t, 30.0, s.Zone.Radius)
}

func TestShrinkZoneAtFloorIsStable(t *testing.T) {
	s := newTestSession(t)
	s.Zone.Radius = 30

	ShrinkZone(s)

	assert.Equal(t, 30.0, s.Zone.Radius)
}

func TestShrinkZoneDamageOutside(t *testing.T) {
	s := newTestSession(t)
	s.Zone.Radius = 50
	s.Player.Pos = geom.Vec{X: 700, Y: 300}

	assert.True(t, ShrinkZone(s))
	assert.InDelta(t, 99.8, s.Player.Health, 1e-9)

	// Much further out, same flat damage
	s.Player.Pos = geom.Vec{X: 5000, Y: 5000}
	assert.True(t, ShrinkZone(s))
	assert.InDelta(t, 99.6, s.Player.Health, 1e-9)
}

func TestShrinkZoneUsesPlayerCenter(t *testing.T) {
	s := newTestSession(t)
	s.Zone.Radius = 40.1 // About 40 after this tick's shrink

	// Top-left corner is about 41.2 away, the center only 30
	s.Player.Pos = geom.Vec{X: 360, Y: 290}
	assert.False(t, ShrinkZone(s))
	assert.Equal(t, 100.0, s.Player.Health)

	// Center (441, 300) is 41 away
	s.Zone.Radius = 40.1
	s.Player.Pos = geom.Vec{X: 431, Y: 290}
	assert.True(t, ShrinkZone(s))
}
