package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"zombies/config"
	"zombies/engine"
	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/geom"
	"zombies/policy"
	"zombies/searcher"
	"zombies/searcher/agent"
)

// Setup is what every experiment shares: the rules, the searched policies,
// the scenarios played by each agent and where results are stored.
type Setup struct {
	Rules     game.Rules
	Policies  []policy.Named
	Scenarios []config.Scenario
	MaxTurns  int
	Dir       string
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Policy: "save"}, // Baseline without search
	{ID: 2, Depth: 2, Goroutines: 1},
	{ID: 3, Depth: 4, Goroutines: 1},
	{ID: 4, Depth: 6, Goroutines: 1},
	{ID: 5, Depth: 8, Goroutines: 1},
}

// RunDepthExperiment plays every scenario with searches of growing depth
// against the single policy baseline.
func RunDepthExperiment(ctx context.Context, setup Setup) (string, error) {
	return runExperiment(ctx, setup, "depth", depthConfigs)
}

// DefaultScenarios are played when the config names none.
func DefaultScenarios() []config.Scenario {
	return []config.Scenario{
		{
			Name:    "simple",
			Player:  geom.Point{X: 0, Y: 0},
			Humans:  []geom.Point{{X: 8250, Y: 4500}},
			Zombies: []geom.Point{{X: 8250, Y: 8999}},
		},
		{
			Name:    "two zombies",
			Player:  geom.Point{X: 5000, Y: 0},
			Humans:  []geom.Point{{X: 950, Y: 6000}, {X: 8000, Y: 6100}},
			Zombies: []geom.Point{{X: 3100, Y: 7000}, {X: 11500, Y: 7100}},
		},
		{
			Name:    "crossfire",
			Player:  geom.Point{X: 8000, Y: 4500},
			Humans:  []geom.Point{{X: 2000, Y: 2000}, {X: 14000, Y: 7000}, {X: 8000, Y: 500}},
			Zombies: []geom.Point{{X: 4000, Y: 2000}, {X: 12000, Y: 8000}, {X: 8000, Y: 8500}, {X: 1000, Y: 8000}},
		},
	}
}

func runExperiment(ctx context.Context, setup Setup, name string, configs []metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting agent %d of %d with %+v...", ci+1, len(configs), config)

		a, err := createAgent(setup, config)
		if err != nil {
			return "", err
		}
		for si, scenario := range setup.Scenarios {
			e := engine.NewLocalEngine(scenario.State(setup.Rules), a, setup.Rules, setup.MaxTurns)
			gameMetric, turnMetrics, err := e.Run(ctx)
			if err != nil {
				return "", fmt.Errorf("agent %d scenario %q: %w", config.ID, scenario.Name, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				Scenario:   scenario.Name,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: tm,
				})
			}

			log.Info().Msgf("completed scenario %d of %d with won: %t, score: %d", si+1, len(setup.Scenarios), gameMetric.Won, gameMetric.Score)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(setup.Dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

func createAgent(setup Setup, config metrics.AgentConfig) (agent.Agent, error) {
	if config.Policy != "" {
		named, err := policy.ByName(config.Policy)
		if err != nil {
			return nil, err
		}
		return agent.NewPolicyAgent(named[0], setup.Rules), nil
	}

	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	return agent.NewLookaheadAgent(searcher.NewLookahead(setup.Rules, setup.Policies, options...)), nil
}
