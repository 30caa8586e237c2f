package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/searcher/agent"
)

// RemoteEngine plays against an external referee that sends every turn's
// state on in and reads the player's destination from out.
type RemoteEngine struct {
	ID     string
	agent  agent.Agent
	rules  game.Rules
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

func NewRemoteEngine(a agent.Agent, rules game.Rules, in io.Reader, out io.Writer) *RemoteEngine {
	id := uuid.NewString()
	return &RemoteEngine{
		ID:     id,
		agent:  a,
		rules:  rules,
		in:     bufio.NewReader(in),
		out:    out,
		logger: log.With().Str("session", id).Logger(),
	}
}

// Run answers turns until the referee closes the input. The score is not
// part of the input, so it is tracked by simulating each turn locally.
func (e *RemoteEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.TurnMetric, error) {
	gameMetric := metrics.GameMetric{Game: e.ID, StartTime: time.Now()}
	turnMetrics := []metrics.TurnMetric{}
	score := 0
	var last game.State

	e.logger.Info().Msg("waiting for the referee")

	for turn := 1; ; turn++ {
		if err := ctx.Err(); err != nil {
			return e.complete(gameMetric, last, turn-1), turnMetrics, err
		}

		state, err := ReadState(e.in, score)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return e.complete(gameMetric, last, turn-1), turnMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if e.logger.Debug().Enabled() {
			zombies, humans := state.Retarget().TargetSummary()
			e.logger.Debug().Msgf("turn %d zombies: %s", turn, zombies)
			e.logger.Debug().Msgf("turn %d humans: %s", turn, humans)
		}

		decision, searchMetric, err := e.agent.FindMove(ctx, state)
		if err != nil {
			return e.complete(gameMetric, last, turn-1), turnMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if err := WriteDecision(e.out, decision.Player); err != nil {
			return e.complete(gameMetric, last, turn-1), turnMetrics, err
		}

		last = state.Step(e.rules, game.Follow(decision.Player))
		score = last.Score
		turnMetrics = append(turnMetrics, metrics.TurnMetric{
			Turn:         turn,
			Policy:       decision.Policy,
			Value:        decision.Value,
			Score:        score,
			Humans:       len(last.Humans),
			Zombies:      len(last.Zombies),
			SearchMetric: searchMetric,
		})
		e.logger.Info().Msgf("turn %d: %s (value %d), expected score %d", turn, decision.Policy, decision.Value, score)
	}

	gameMetric = e.complete(gameMetric, last, len(turnMetrics))
	e.logger.Info().Msgf("referee closed the game after %d turns with expected score %d", gameMetric.TotalTurns, gameMetric.Score)
	return gameMetric, turnMetrics, nil
}

func (e *RemoteEngine) complete(m metrics.GameMetric, last game.State, turns int) metrics.GameMetric {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalTurns = turns
	m.Score = last.Score
	m.Won = last.Won()
	return m
}
