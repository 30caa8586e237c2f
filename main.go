package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"zombies/config"
	"zombies/engine"
	"zombies/experiments"
	"zombies/experiments/metrics"
	"zombies/policy"
	"zombies/searcher"
	"zombies/searcher/agent"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "play", "play (referee on stdin/stdout), selfplay or experiment")
	experiment := flag.String("experiment", "depth", "Experiment to run in experiment mode: depth or throughput")
	depth := flag.Int("depth", 0, "Search depth in turns")
	goroutines := flag.Int("goroutines", 0, "Number of goroutines for first-level branches")
	duration := flag.Duration("duration", 0, "Time budget of a search")
	out := flag.String("out", "experiments", "Directory for CSV records")
	verbose := flag.Bool("v", false, "Log targets every turn")
	flag.Parse()

	// Stdout is the game channel
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := loadConfig(*configPath, *depth, *goroutines, *duration, *verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure")
	}
	level, _ := cfg.Level() // Validated by loadConfig
	zerolog.SetGlobalLevel(level)

	policies, _ := cfg.Policies()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		e := engine.NewRemoteEngine(newAgent(cfg, policies), cfg.Rules, os.Stdin, os.Stdout)
		if _, _, err := e.Run(ctx); err != nil {
			log.Fatal().Err(err).Str("session", e.ID).Msg("game aborted")
		}
	case "selfplay":
		if err := selfPlay(ctx, cfg, policies, *out); err != nil {
			log.Fatal().Err(err).Msg("self-play failed")
		}
	case "experiment":
		setup := experiments.Setup{Rules: cfg.Rules, Policies: policies, Scenarios: scenarios(cfg), MaxTurns: cfg.MaxTurns, Dir: *out}
		run := experiments.RunDepthExperiment
		if *experiment == "throughput" {
			run = experiments.RunThroughputExperiment
		}
		if _, err := run(ctx, setup); err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func loadConfig(path string, depth, goroutines int, duration time.Duration, verbose bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if depth > 0 {
		cfg.Search.Depth = depth
	}
	if goroutines > 0 {
		cfg.Search.Goroutines = goroutines
	}
	if duration > 0 {
		cfg.Search.Duration = duration
	}
	if verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newAgent(cfg *config.Config, policies []policy.Named) agent.Agent {
	options := []searcher.Option{
		searcher.WithDepth(cfg.Search.Depth),
		searcher.WithGoroutines(cfg.Search.Goroutines),
		searcher.WithDuration(cfg.Search.Duration),
		searcher.WithMetrics(),
	}
	return agent.NewLookaheadAgent(searcher.NewLookahead(cfg.Rules, policies, options...))
}

func scenarios(cfg *config.Config) []config.Scenario {
	if len(cfg.Scenarios) == 0 {
		return experiments.DefaultScenarios()
	}
	return cfg.Scenarios
}

// selfPlay plays every scenario with the configured search and stores the records.
func selfPlay(ctx context.Context, cfg *config.Config, policies []policy.Named, dir string) error {
	a := newAgent(cfg, policies)
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	for i, scenario := range scenarios(cfg) {
		e := engine.NewLocalEngine(scenario.State(cfg.Rules), a, cfg.Rules, cfg.MaxTurns)
		gameMetric, turnMetrics, err := e.Run(ctx)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, Scenario: scenario.Name, GameMetric: gameMetric})
		for _, tm := range turnMetrics {
			turnRecords = append(turnRecords, metrics.TurnRecord{Game: i + 1, TurnMetric: tm})
		}
	}

	writer, err := metrics.NewWriter(dir, "selfplay")
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored %d games in %s", len(gameRecords), writer.Dir())
	return nil
}
