package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"zombies/game"
	"zombies/geom"
	"zombies/meta"
	"zombies/policy"
)

type Config struct {
	Rules     game.Rules `yaml:"rules"`
	Search    Search     `yaml:"search"`
	LogLevel  string     `yaml:"log_level"`
	MaxTurns  int        `yaml:"max_turns"`
	Scenarios []Scenario `yaml:"scenarios"`
}

type Search struct {
	Depth      int           `yaml:"depth"`
	Goroutines int           `yaml:"goroutines"`
	Duration   time.Duration `yaml:"duration"` // No budget when zero
	Policies   []string      `yaml:"policies"`
}

// Scenario is a starting position for local play. Zombies only give their
// position; their first move is planned the way the game plans it.
type Scenario struct {
	Name    string       `yaml:"name"`
	Player  geom.Point   `yaml:"player"`
	Humans  []geom.Point `yaml:"humans"`
	Zombies []geom.Point `yaml:"zombies"`
}

// Default returns the standard rules and search settings.
func Default() *Config {
	return &Config{
		Rules: game.NewStandardRules(),
		Search: Search{
			Depth:      meta.SEARCH_DEPTH,
			Goroutines: meta.GO_ROUTINES,
			Policies:   []string{"save", "hordes", "hold"},
		},
		LogLevel: zerolog.LevelInfoValue,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := loadYAML(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func (c *Config) Validate() error {
	r := c.Rules
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("map must not be empty, got %dx%d", r.Width, r.Height)
	}
	if r.PlayerStep < 0 || r.ZombieStep < 0 || r.KillRange < 0 || r.ScoreFactor < 0 {
		return fmt.Errorf("rules must not be negative: %+v", r)
	}
	if c.Search.Depth <= 0 {
		return fmt.Errorf("search depth must be positive, got %d", c.Search.Depth)
	}
	if c.Search.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Search.Goroutines)
	}
	if c.Search.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", c.Search.Duration)
	}
	if _, err := c.Policies(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Policies() ([]policy.Named, error) {
	if len(c.Search.Policies) == 0 {
		return nil, fmt.Errorf("no policies to search")
	}
	return policy.ByName(c.Search.Policies...)
}

func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("bad log level: %w", err)
	}
	return level, nil
}

// State builds the starting state of the scenario under rules.
func (s Scenario) State(rules game.Rules) game.State {
	humans := make([]game.Human, len(s.Humans))
	for i, p := range s.Humans {
		humans[i] = game.NewHuman(i, p)
	}
	zombies := make([]game.Zombie, len(s.Zombies))
	for i, p := range s.Zombies {
		zombies[i] = game.NewZombie(i, p, p)
	}
	return game.NewState(game.NewPlayer(s.Player), humans, zombies, 0).Plan(rules)
}
