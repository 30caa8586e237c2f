package game

import (
	"zombies/geom"
	"zombies/meta"
)

// Rules carries every tunable of the simulation so alternative rule sets can
// be simulated side by side.
type Rules struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PlayerStep  int `yaml:"player_step"`
	KillRange   int `yaml:"kill_range"`
	ZombieStep  int `yaml:"zombie_step"`
	ScoreFactor int `yaml:"score_factor"`
}

func NewStandardRules() Rules {
	return Rules{
		Width:       meta.MAP_WIDTH,
		Height:      meta.MAP_HEIGHT,
		PlayerStep:  meta.PLAYER_STEP,
		KillRange:   meta.PLAYER_RANGE,
		ZombieStep:  meta.ZOMBIE_STEP,
		ScoreFactor: meta.SCORE_FACTOR,
	}
}

// Clamp keeps a point on the map.
func (r Rules) Clamp(p geom.Point) geom.Point {
	return geom.Point{
		X: max(0, min(p.X, r.Width-1)),
		Y: max(0, min(p.Y, r.Height-1)),
	}
}

// TurnReward is the score for killing kills zombies in one turn while humans
// humans are alive. Every extra simultaneous kill is worth the next Fibonacci
// multiple of the base.
func (r Rules) TurnReward(kills, humans int) int {
	base := r.ScoreFactor * humans * humans
	reward := 0
	for i := 1; i <= kills; i++ {
		reward += base * Fib(i+1)
	}
	return reward
}

// Fib returns the nth Fibonacci number with Fib(0) = 0 and Fib(1) = 1.
func Fib(n int) int {
	a, b := 0, 1
	for range n {
		a, b = b, a+b
	}
	return a
}
