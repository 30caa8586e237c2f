package agent

import (
	"context"

	"zombies/experiments/metrics"
	"zombies/game"
	"zombies/policy"
)

type policyAgent struct {
	policy policy.Named
	rules  game.Rules
}

// NewPolicyAgent returns an agent that always follows one policy without
// searching. It is the baseline the lookahead agent is measured against.
func NewPolicyAgent(p policy.Named, rules game.Rules) Agent {
	return policyAgent{policy: p, rules: rules}
}

func (a policyAgent) FindMove(_ context.Context, state game.State) (Decision, metrics.SearchMetric, error) {
	// Policies decide on a targeted state, as they do inside Step
	player := a.policy.Decide(state.Retarget(), a.rules)
	return Decision{Player: player, Policy: a.policy.Name, Value: state.Score}, metrics.SearchMetric{Policies: 1}, nil
}
