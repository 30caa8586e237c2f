package searcher

import (
	"context"

	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/policy"
)

// Result is the first-level branch chosen by a search.
type Result struct {
	Policy int        // Index of the chosen policy
	Name   string     // Name of the chosen policy
	Child  game.State // State after playing the chosen policy for one turn
	Value  int        // Best value found in the branch's subtree
}

// Decision is the destination and label to output this turn.
func (r Result) Decision() game.Player {
	return r.Child.Player
}

type Searcher interface {
	Search(ctx context.Context, state game.State) (Result, metrics.SearchMetric, error)
	Policies() []policy.Named
}
