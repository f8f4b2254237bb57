package simulation

import (
	"chosenoffset.com/zonearena/internal/entity"
	"chosenoffset.com/zonearena/internal/input"
)

// MovePlayer shifts the player by its speed along every pressed axis.
// Axes are independent, so a diagonal moves speed·√2 per tick.
func MovePlayer(s *Session, in input.Snapshot) {
	p := &s.Player
	if in.Up {
		p.Pos.Y -= p.Speed
	}
	if in.Down {
		p.Pos.Y += p.Speed
	}
	if in.Left {
		p.Pos.X -= p.Speed
	}
	if in.Right {
		p.Pos.X += p.Speed
	}
}

// PursueAndStrike advances each live enemy toward the player and, if it then
// touches the player, applies contact damage. Each touching enemy hurts
// independently. Returns the total damage dealt this tick.
func PursueAndStrike(s *Session) float64 {
	cfg := s.Config.Enemy
	p := &s.Player
	dealt := 0.0

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}

		// Enemy and player coincide: no direction to move in
		delta := p.Pos.Sub(e.Pos)
		if delta.Len() > 0 {
			e.Pos = e.Pos.Add(delta.Normalize().Scale(cfg.Speed))
		}

		if p.Bounds().Touches(e.Bounds()) {
			p.Health -= cfg.ContactDamage
			dealt += cfg.ContactDamage
		}
	}

	return dealt
}

// AdvanceBullets moves every bullet by its velocity and drops the ones that
// have left the top of the field.
func AdvanceBullets(s *Session) {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Pos.Y += b.DY
		if b.Pos.Y > 0 {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

// ResolveHits kills every live enemy a bullet overlaps, calling onKill once
// per kill with the enemy's index. Bullets pass through and stay in flight,
// so one bullet may kill several enemies. An enemy killed earlier in the same
// pass is no longer alive and is skipped.
func ResolveHits(s *Session, onKill func(enemy int)) int {
	kills := 0
	for bi := range s.Bullets {
		box := s.Bullets[bi].Bounds()
		for ei := range s.Enemies {
			e := &s.Enemies[ei]
			if !e.Alive || !box.Overlaps(e.Bounds()) {
				continue
			}
			e.Alive = false
			kills++
			if onKill != nil {
				onKill(ei)
			}
		}
	}
	return kills
}

// Fire appends one bullet at the player's horizontal center and current y.
func Fire(s *Session) entity.Bullet {
	p := &s.Player
	b := entity.NewBullet(p.Pos.X+p.Size/2, p.Pos.Y, s.Config.Bullet.DY)
	s.Bullets = append(s.Bullets, b)
	return b
}
