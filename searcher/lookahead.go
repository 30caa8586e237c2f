package searcher

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/meta"
	"zombies/policy"
)

type Option func(l *Lookahead)

// Lookahead plays every policy against every other for a fixed number of
// turns and picks the first move of the best branch.
type Lookahead struct {
	rules      game.Rules
	policies   []policy.Named
	depth      int
	goroutines int
	duration   time.Duration
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(l *Lookahead) {
		if depth > 0 {
			l.depth = depth
		}
	}
}

// WithGoroutines evaluates up to n first-level branches in parallel.
func WithGoroutines(goroutines int) Option {
	return func(l *Lookahead) {
		if goroutines > 0 {
			l.goroutines = goroutines
		}
	}
}

// WithDuration bounds the wall-clock time of a search. Nodes reached after
// the deadline are scored as leaves.
func WithDuration(duration time.Duration) Option {
	return func(l *Lookahead) {
		if duration > 0 {
			l.duration = duration
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(l *Lookahead) {
		if evaluate != nil {
			l.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(l *Lookahead) {
		l.metrics = metrics.NewCollector()
	}
}

func NewLookahead(rules game.Rules, policies []policy.Named, options ...Option) *Lookahead {
	if len(policies) == 0 {
		panic("Must specify at least one policy")
	}
	l := &Lookahead{ // Default values
		rules:      rules,
		policies:   policies,
		depth:      meta.SEARCH_DEPTH,
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.EvaluateWinnable,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Lookahead) Policies() []policy.Named {
	return l.policies
}

// Search expands one child per policy from state and returns the child whose
// subtree holds the highest value. Ties keep the earliest policy.
func (l *Lookahead) Search(ctx context.Context, state game.State) (Result, metrics.SearchMetric, error) {
	if l.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.duration)
		defer cancel()
	}

	l.metrics.Start(l.goroutines, l.depth, len(l.policies))

	children := make([]game.State, len(l.policies))
	values := make([]int, len(l.policies))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.goroutines)
	for i, p := range l.policies {
		g.Go(func() error {
			children[i] = state.Step(l.rules, p.Decide)
			l.metrics.AddNode()
			values[i] = l.value(ctx, children[i], l.depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, l.metrics.Complete(), err
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	result := Result{
		Policy: best,
		Name:   l.policies[best].Name,
		Child:  children[best],
		Value:  values[best],
	}
	return result, l.metrics.Complete(), nil
}

// value is the best score reachable from state within depth more turns. The
// state's own score counts too: a branch may lose value further down.
func (l *Lookahead) value(ctx context.Context, state game.State, depth int) int {
	if depth <= 0 || state.Terminal() {
		l.metrics.AddLeaf()
		return l.evaluate(state, l.rules)
	}
	if ctx.Err() != nil {
		l.metrics.AddCutoff()
		l.metrics.AddLeaf()
		return l.evaluate(state, l.rules)
	}

	best := state.Score
	for _, p := range l.policies {
		if ctx.Err() != nil { // Deadline is only checked between expansions
			break
		}
		child := state.Step(l.rules, p.Decide)
		l.metrics.AddNode()
		best = max(best, l.value(ctx, child, depth-1))
	}
	return best
}
