package experiments

import (
	"context"
	"time"

	"zombies/experiments/metrics"
)

const budget = 50 * time.Millisecond // Per turn

var throughputConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 10, Goroutines: 1, Duration: budget},
	{ID: 2, Depth: 10, Goroutines: 2, Duration: budget},
	{ID: 3, Depth: 10, Goroutines: 4, Duration: budget},
	{ID: 4, Depth: 10, Goroutines: 8, Duration: budget},
}

// RunThroughputExperiment gives the same time budget to searches with more
// and more goroutines. Nodes per turn in the turn records show the speedup.
func RunThroughputExperiment(ctx context.Context, setup Setup) (string, error) {
	return runExperiment(ctx, setup, "throughput", throughputConfigs)
}
