package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/meta"
	"zombies/searcher/agent"
)

// LocalEngine plays a game from a starting state with the simulator as the
// referee.
type LocalEngine struct {
	ID       string
	State    game.State
	agent    agent.Agent
	rules    game.Rules
	maxTurns int
}

func NewLocalEngine(state game.State, a agent.Agent, rules game.Rules, maxTurns int) *LocalEngine {
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &LocalEngine{
		ID:       uuid.NewString(),
		State:    state,
		agent:    a,
		rules:    rules,
		maxTurns: maxTurns,
	}
}

// Run executes the entire game loop until the game ends.
func (e *LocalEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.TurnMetric, error) {
	gameMetric := metrics.GameMetric{Game: e.ID, StartTime: time.Now()}
	turnMetrics := []metrics.TurnMetric{}

	log.Debug().Str("game", e.ID).Msgf("starting from %s", e.State)

	var err error
	for turn := 1; !e.State.Terminal() && turn <= e.maxTurns; turn++ {
		if err = ctx.Err(); err != nil {
			break
		}
		decision, searchMetric, findErr := e.agent.FindMove(ctx, e.State)
		if findErr != nil {
			err = findErr
			break
		}

		e.State = e.State.Step(e.rules, game.Follow(decision.Player))
		turnMetrics = append(turnMetrics, metrics.TurnMetric{
			Turn:         turn,
			Policy:       decision.Policy,
			Value:        decision.Value,
			Score:        e.State.Score,
			Humans:       len(e.State.Humans),
			Zombies:      len(e.State.Zombies),
			SearchMetric: searchMetric,
		})
		log.Debug().Str("game", e.ID).Msgf("turn %d: %s -> %s", turn, decision.Player, e.State)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = len(turnMetrics)
	gameMetric.Score = e.State.Score
	gameMetric.Won = e.State.Won()

	log.Info().Str("game", e.ID).Msgf("finished after %d turns, won: %t, score: %d", gameMetric.TotalTurns, gameMetric.Won, gameMetric.Score)
	return gameMetric, turnMetrics, err
}
