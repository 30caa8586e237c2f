package game

import (
	"math"

	"zombies/geom"
)

// Savable reports whether the player can get within kill range of the ith
// human's hunter before that zombie reaches the human. The targets of s must
// be resolved; a human nobody hunts is not savable.
func (s State) Savable(rules Rules, i int) bool {
	h := s.human(i)
	z, ok := s.Hunter(i)
	if !ok {
		return false
	}

	hz := geom.Between(h.Pos, z.Pos)
	hp := geom.Between(h.Pos, s.Player.Pos)
	zombieStep := float64(rules.ZombieStep)
	playerStep := float64(rules.PlayerStep)
	killRange := float64(rules.KillRange)

	zombieTurns := turns(hz.Len(), zombieStep)

	angle, ok := geom.AngleBetween(hp, hz)
	if !ok || math.Abs(angle) >= math.Pi/2 {
		// Zombie comes from behind the player's approach
		return turns(hp.Len()-killRange, playerStep) <= zombieTurns
	}

	closing := math.Cos(angle) * zombieStep
	projected := hp.Len() - closing
	effective := playerStep - closing
	if effective <= 0 {
		return hp.Len() <= killRange
	}
	return turns(projected-killRange, effective) <= zombieTurns
}

func turns(distance, step float64) int {
	if step <= 0 {
		return math.MaxInt
	}
	return int(math.Ceil(distance / step))
}

// Winnable reports whether the game can still be won from s: no zombie is
// left, or at least one human is savable once targets are recomputed.
func (s State) Winnable(rules Rules) bool {
	if len(s.Zombies) == 0 {
		return true
	}
	targeted := s.Retarget()
	for i := range targeted.Humans {
		if targeted.Savable(rules, i) {
			return true
		}
	}
	return false
}

// SavableCount counts the savable humans of a targeted state.
func (s State) SavableCount(rules Rules) int {
	count := 0
	for i := range s.Humans {
		if s.Savable(rules, i) {
			count++
		}
	}
	return count
}

// EvaluateWinnable scores a leaf by its running score, or Unwinnable when all
// humans died or none of them can be saved any more.
func EvaluateWinnable(s State, rules Rules) int {
	if s.Lost() || !s.Winnable(rules) {
		return Unwinnable
	}
	return s.Score
}

// EvaluateScore scores a leaf by its running score alone, only penalizing a
// lost game.
func EvaluateScore(s State, rules Rules) int {
	if s.Lost() {
		return Unwinnable
	}
	return s.Score
}
