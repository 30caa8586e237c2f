package engine

import (
	"context"

	"zombies/experiments/metrics"
)

type Engine interface {
	// Run plays a game till it ends, the input runs out or a max number of turns is reached
	Run(ctx context.Context) (metrics.GameMetric, []metrics.TurnMetric, error)
}
