package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"zombies/game"
	"zombies/geom"
	"zombies/policy"
)

func pt(x, y int) geom.Point {
	return geom.Point{X: x, Y: y}
}

func named(name string, decide game.Policy) policy.Named {
	return policy.Named{Name: name, Decide: decide}
}

func toward(p geom.Point) game.Policy {
	return func(game.State, game.Rules) game.Player {
		return game.NewLabeledPlayer(p, "charge")
	}
}

// ambushState has a zombie one step from eating a human. Charging kills it
// this turn; holding leaves the kill for the next turn.
func ambushState() game.State {
	return game.NewState(game.NewPlayer(pt(3000, 0)),
		[]game.Human{game.NewHuman(0, pt(5000, 0))},
		[]game.Zombie{game.NewZombie(0, pt(5800, 0), pt(5400, 0))}, 0)
}

func TestNewLookahead(t *testing.T) {
	t.Run("panics without policies", func(t *testing.T) {
		require.Panics(t, func() {
			NewLookahead(game.NewStandardRules(), nil)
		}, "Should panic when there is nothing to search")
	})
}

func TestLookaheadSearch(t *testing.T) {
	rules := game.NewStandardRules()
	ctx := context.Background()

	t.Run("picking the branch with the higher value", func(t *testing.T) {
		policies := []policy.Named{named("hold", policy.Hold), named("charge", toward(pt(5400, 0)))}
		l := NewLookahead(rules, policies, WithDepth(1))

		got, _, err := l.Search(ctx, ambushState())

		require.NoError(t, err)
		require.Equal(t, 1, got.Policy, "Charging kills the zombie this turn")
		require.Equal(t, "charge", got.Name)
		require.Equal(t, 10, got.Value)
		require.Equal(t, pt(4000, 0), got.Decision().Pos)
		require.Equal(t, "charge", got.Decision().Label)
		require.True(t, got.Child.Won())
	})

	t.Run("ties keep the earliest policy", func(t *testing.T) {
		policies := []policy.Named{named("hold", policy.Hold), named("charge", toward(pt(5400, 0)))}
		l := NewLookahead(rules, policies, WithDepth(2))

		got, _, err := l.Search(ctx, ambushState())

		require.NoError(t, err)
		require.Equal(t, 0, got.Policy, "Waiting lets the zombie walk into range next turn")
		require.Equal(t, 10, got.Value)
	})

	t.Run("hopeless branches score below zero", func(t *testing.T) {
		state := game.NewState(game.NewPlayer(pt(0, 0)),
			[]game.Human{game.NewHuman(0, pt(10000, 0))},
			[]game.Zombie{game.NewZombie(0, pt(10400, 0), pt(10000, 0))}, 0)
		l := NewLookahead(rules, policy.Default(), WithDepth(3))

		got, _, err := l.Search(ctx, state)

		require.NoError(t, err)
		require.Equal(t, game.Unwinnable, got.Value, "The only human is eaten this turn")
		require.True(t, got.Child.Lost())
	})

	t.Run("single policy search matches a direct rollout", func(t *testing.T) {
		state := game.NewState(game.NewPlayer(pt(0, 0)),
			[]game.Human{game.NewHuman(0, pt(10000, 5000))},
			[]game.Zombie{game.NewZombie(0, pt(4000, 0), pt(3600, 0))}, 0)
		depth := 6
		l := NewLookahead(rules, []policy.Named{named("hold", policy.Hold)}, WithDepth(depth))

		got, _, err := l.Search(ctx, state)
		flow := state.Predict(rules, policy.Hold, depth)

		require.NoError(t, err)
		require.Equal(t, flow[0], got.Child, "Chosen move should be the rollout's first turn")
		require.Equal(t, flow[len(flow)-1].Score, got.Value)
		require.Equal(t, 10, got.Value)
	})

	t.Run("moving toward the sole human with no zombies", func(t *testing.T) {
		state := game.NewState(game.NewPlayer(pt(0, 0)), []game.Human{game.NewHuman(0, pt(5000, 0))}, nil, 0)
		l := NewLookahead(rules, policy.Default(), WithDepth(4))

		got, _, err := l.Search(ctx, state)

		require.NoError(t, err)
		require.Equal(t, "save", got.Name)
		require.Equal(t, pt(1000, 0), got.Decision().Pos)
	})

	t.Run("parallel branches agree with sequential search", func(t *testing.T) {
		state := game.NewState(game.NewPlayer(pt(8000, 4500)),
			[]game.Human{game.NewHuman(0, pt(2000, 2000)), game.NewHuman(1, pt(14000, 7000)), game.NewHuman(2, pt(8000, 500))},
			[]game.Zombie{
				game.NewZombie(0, pt(4000, 2000), pt(3600, 2000)),
				game.NewZombie(1, pt(12000, 8000), pt(12400, 7800)),
				game.NewZombie(2, pt(8000, 8500), pt(8000, 8100)),
			}, 0)

		sequential, _, err := NewLookahead(rules, policy.Default(), WithDepth(5)).Search(ctx, state)
		require.NoError(t, err)
		parallel, _, err := NewLookahead(rules, policy.Default(), WithDepth(5), WithGoroutines(3)).Search(ctx, state)
		require.NoError(t, err)

		require.Equal(t, sequential, parallel)
	})

	t.Run("search leaves the input state untouched", func(t *testing.T) {
		state := ambushState()
		before := state.Copy()

		_, _, err := NewLookahead(rules, policy.Default(), WithDepth(3)).Search(ctx, state)

		require.NoError(t, err)
		require.Equal(t, before, state)
	})
}

func TestLookaheadMetrics(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("counting a full expansion", func(t *testing.T) {
		state := game.NewState(game.NewPlayer(pt(0, 0)),
			[]game.Human{game.NewHuman(0, pt(0, 8000))},
			[]game.Zombie{game.NewZombie(0, pt(15000, 8000), pt(14600, 8000))}, 0)
		policies := []policy.Named{named("hold", policy.Hold), named("save", policy.SaveHumans)}
		l := NewLookahead(rules, policies, WithDepth(3), WithMetrics())

		_, metric, err := l.Search(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, 2+4+8, metric.Nodes, "Should simulate every branch to depth 3")
		require.Equal(t, 8, metric.Leaves)
		require.Equal(t, 0, metric.Cutoffs)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 2, metric.Policies)
	})

	t.Run("expired budget turns first-level children into leaves", func(t *testing.T) {
		state := game.NewState(game.NewPlayer(pt(0, 0)),
			[]game.Human{game.NewHuman(0, pt(0, 8000))},
			[]game.Zombie{game.NewZombie(0, pt(15000, 8000), pt(14600, 8000))}, 0)
		l := NewLookahead(rules, policy.Default(), WithDepth(6), WithMetrics())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, metric, err := l.Search(ctx, state)

		require.NoError(t, err)
		require.Equal(t, 3, metric.Nodes)
		require.Equal(t, 3, metric.Cutoffs)
		require.Equal(t, "save", got.Name, "Equal leaves keep the earliest policy")
	})
}
