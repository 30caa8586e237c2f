package agent

import (
	"context"
	"fmt"

	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/searcher"
)

type lookaheadAgent struct {
	searcher searcher.Searcher
}

// NewLookaheadAgent returns an agent that plays the first move of the best
// branch found by the searcher.
func NewLookaheadAgent(s searcher.Searcher) Agent {
	return lookaheadAgent{searcher: s}
}

func (a lookaheadAgent) FindMove(ctx context.Context, state game.State) (Decision, metrics.SearchMetric, error) {
	result, metric, err := a.searcher.Search(ctx, state)
	if err != nil {
		return Decision{}, metric, fmt.Errorf("search: %w", err)
	}
	return Decision{Player: result.Decision(), Policy: result.Name, Value: result.Value}, metric, nil
}
