package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"zombies/game"
	"zombies/geom"
	"zombies/meta"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("keeping defaults for missing keys", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "search:\n  depth: 4\n"))

		require.NoError(t, err)
		require.Equal(t, 4, cfg.Search.Depth)
		require.Equal(t, game.NewStandardRules(), cfg.Rules)
		require.Equal(t, []string{"save", "hordes", "hold"}, cfg.Search.Policies)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)
	})

	t.Run("reading every section", func(t *testing.T) {
		content := `
rules:
  width: 1000
  height: 500
  player_step: 100
  kill_range: 200
  zombie_step: 40
  score_factor: 1
search:
  depth: 3
  goroutines: 2
  duration: 50ms
  policies: [hold, wander]
log_level: debug
max_turns: 20
scenarios:
  - name: duel
    player: {x: 0, y: 0}
    humans: [{x: 500, y: 0}]
    zombies: [{x: 900, y: 0}]
`
		cfg, err := Load(writeConfig(t, content))

		require.NoError(t, err)
		require.Equal(t, game.Rules{Width: 1000, Height: 500, PlayerStep: 100, KillRange: 200, ZombieStep: 40, ScoreFactor: 1}, cfg.Rules)
		require.Equal(t, Search{Depth: 3, Goroutines: 2, Duration: 50 * time.Millisecond, Policies: []string{"hold", "wander"}}, cfg.Search)
		require.Equal(t, 20, cfg.MaxTurns)
		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
		require.Len(t, cfg.Scenarios, 1)
		require.Equal(t, "duel", cfg.Scenarios[0].Name)
		require.Equal(t, []geom.Point{{X: 900, Y: 0}}, cfg.Scenarios[0].Zombies)
	})

	t.Run("rejecting unknown policies", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search:\n  policies: [hold, teleport]\n"))

		require.ErrorContains(t, err, `unknown policy "teleport"`)
	})

	t.Run("rejecting a bad depth", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search:\n  depth: -1\n"))

		require.ErrorContains(t, err, "search depth must be positive")
	})

	t.Run("rejecting a bad log level", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log_level: loud\n"))

		require.ErrorContains(t, err, "bad log level")
	})

	t.Run("reporting a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reporting malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search: [\n"))

		require.Error(t, err)
	})
}

func TestScenarioState(t *testing.T) {
	t.Run("planning the zombies' first move", func(t *testing.T) {
		s := Scenario{
			Player:  geom.Point{X: 0, Y: 0},
			Humans:  []geom.Point{{X: 8000, Y: 0}},
			Zombies: []geom.Point{{X: 9000, Y: 0}, {X: 1000, Y: 0}},
		}

		state := s.State(game.NewStandardRules())

		require.Equal(t, 0, state.Score)
		require.Equal(t, 0, state.Humans[0].ID)
		require.Equal(t, 1, state.Zombies[1].ID)
		require.Equal(t, geom.Point{X: 8600, Y: 0}, state.Zombies[0].Next)
		require.Equal(t, geom.Point{X: 600, Y: 0}, state.Zombies[1].Next)
	})
}
