package agent

import (
	"context"

	"zombies/experiments/metrics"
	"zombies/game"
)

// Decision is the destination chosen for one turn along with how it was found.
type Decision struct {
	Player game.Player
	Policy string
	Value  int // Best value found by the search, or the running score without one
}

type Agent interface {
	// FindMove returns the player's destination and performance metrics (if collected) from the search
	FindMove(ctx context.Context, state game.State) (Decision, metrics.SearchMetric, error)
}
