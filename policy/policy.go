package policy

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"zombies/game"
	"zombies/geom"
)

const (
	LabelHold      = "Zzz..."
	LabelSaving    = "Saving"
	LabelEscorting = "Escorting"
	LabelDesperate = "Desperate"
	LabelHordes    = "Kill 'em all"
	LabelIdle      = "Idle"
	LabelWander    = "Wandering"
)

// Named pairs a policy with the name used in configuration and logs.
type Named struct {
	Name   string
	Decide game.Policy
}

var registry = map[string]game.Policy{
	"hold":   Hold,
	"save":   SaveHumans,
	"hordes": KillHordes,
	"wander": Wander,
}

// ByName resolves policy names in order.
func ByName(names ...string) ([]Named, error) {
	policies := make([]Named, 0, len(names))
	for _, name := range names {
		decide, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown policy %q", name)
		}
		policies = append(policies, Named{Name: name, Decide: decide})
	}
	return policies, nil
}

// Default is the policy set searched when none is configured.
func Default() []Named {
	policies, err := ByName("save", "hordes", "hold")
	if err != nil {
		panic(err)
	}
	return policies
}

// Hold stays in place.
func Hold(s game.State, _ game.Rules) game.Player {
	return game.NewLabeledPlayer(s.Player.Pos, LabelHold)
}

// SaveHumans heads for the most endangered savable human. Without one it
// falls back to the closest human nobody hunts, then to any human.
func SaveHumans(s game.State, rules game.Rules) game.Player {
	if len(s.Humans) == 0 {
		return Hold(s, rules)
	}

	label := LabelSaving
	candidates := humansWhere(s, func(i int) bool { return s.Savable(rules, i) })
	if len(candidates) == 0 {
		label = LabelEscorting
		candidates = humansWhere(s, func(i int) bool { return s.Humans[i].TargetedBy == game.NoZombie })
	}
	if len(candidates) == 0 {
		label = LabelDesperate
		candidates = humansWhere(s, func(int) bool { return true })
	}

	// Hunted humans rank by their hunter's distance to its own target.
	danger := func(i int) int {
		if z, ok := s.Hunter(i); ok {
			return z.TargetDistSq
		}
		return geom.DistSq(s.Humans[i].Pos, s.Player.Pos)
	}
	closest := slices.MinFunc(candidates, func(a, b int) int {
		return cmp.Compare(danger(a), danger(b))
	})
	return game.NewLabeledPlayer(s.Humans[closest].Pos, label)
}

func humansWhere(s game.State, keep func(int) bool) []int {
	indices := []int{}
	for i := range s.Humans {
		if keep(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

// KillHordes heads for the centroid of the zombies hunting the player.
func KillHordes(s game.State, _ game.Rules) game.Player {
	hunters := []geom.Point{}
	for _, z := range s.Zombies {
		if z.Target.Kind == game.TargetPlayer {
			hunters = append(hunters, z.Pos)
		}
	}
	centroid, ok := geom.Centroid(hunters)
	if !ok {
		return game.NewLabeledPlayer(s.Player.Pos, LabelIdle)
	}
	return game.NewLabeledPlayer(centroid, LabelHordes)
}

// Wander heads for a pseudo-random point on the map. The point is seeded by
// the state so the same state always wanders to the same place.
func Wander(s game.State, rules game.Rules) game.Player {
	r := rand.New(rand.NewSource(uint64(s.Hash())))
	dest := geom.Point{X: r.Intn(rules.Width), Y: r.Intn(rules.Height)}
	return game.NewLabeledPlayer(dest, LabelWander)
}
