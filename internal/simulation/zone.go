package simulation

// ShrinkZone contracts the safe zone by its shrink rate, never below its
// minimum radius, then damages the player if the player's center lies
// outside the circle. The damage is flat regardless of distance.
// Returns whether the player took zone damage.
func ShrinkZone(s *Session) bool {
	z := &s.Zone
	if z.Radius > z.MinRadius {
		z.Radius -= z.ShrinkRate
		if z.Radius < z.MinRadius {
			z.Radius = z.MinRadius
		}
	}

	if z.Contains(s.Player.Center()) {
		return false
	}
	s.Player.Health -= s.Config.Zone.Damage
	return true
}
