package simulation

import (
	"math/rand"

	"chosenoffset.com/zonearena/internal/entity"
)

// Session owns every entity of one round. Engines receive it by pointer;
// nothing else holds references into it.
type Session struct {
	Config  *Config
	Player  entity.Player
	Enemies []entity.Enemy
	Bullets []entity.Bullet
	Zone    entity.SafeZone
	Tick    int // Ticks simulated since the session started
}

// NewSession creates a freshly reset session.
func NewSession(cfg *Config, rng *rand.Rand) *Session {
	s := &Session{Config: cfg}
	s.Reset(rng)
	return s
}

// Reset discards all entities and spawns a new round: the player at its start
// position, the configured number of enemies at random field positions,
// a full-size safe zone and no bullets.
func (s *Session) Reset(rng *rand.Rand) {
	cfg := s.Config

	s.Player = entity.NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Size, cfg.Player.Speed, cfg.Player.Health)

	s.Enemies = make([]entity.Enemy, 0, cfg.Enemy.Count)
	for i := 0; i < cfg.Enemy.Count; i++ {
		x := rng.Float64() * cfg.Field.Width
		y := rng.Float64() * cfg.Field.Height
		s.Enemies = append(s.Enemies, entity.NewEnemy(x, y, cfg.Enemy.Size))
	}

	s.Bullets = nil
	s.Zone = entity.NewSafeZone(cfg.Zone.CenterX, cfg.Zone.CenterY, cfg.Zone.Radius, cfg.Zone.ShrinkRate, cfg.Zone.MinRadius)
	s.Tick = 0
}

// AliveEnemies returns how many enemies are still alive.
func (s *Session) AliveEnemies() int {
	n := 0
	for i := range s.Enemies {
		if s.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// PlayerDead reports whether the player's health is exhausted.
func (s *Session) PlayerDead() bool {
	return s.Player.Health <= 0
}

// Cleared reports whether every enemy is dead.
func (s *Session) Cleared() bool {
	return s.AliveEnemies() == 0
}
