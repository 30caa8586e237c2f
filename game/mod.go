package game

// Policy chooses the player's destination and label for a state whose targets
// have been resolved. Policies must be deterministic and must not modify the
// state's slices: sibling branches of a search share them.
type Policy func(State, Rules) Player

// Evaluates a leaf state to a score, or Unwinnable when the branch cannot
// save anyone.
type Evaluate func(State, Rules) int

// Unwinnable scores a lost or hopeless branch below any real score.
const Unwinnable = -1

// NoZombie marks a human that no zombie is currently hunting.
const NoZombie = -1

type TargetKind int

const (
	TargetPlayer TargetKind = iota
	TargetHuman
)

// Target is what a zombie walks towards: the player, or a human by index into
// the owning state's Humans.
type Target struct {
	Kind  TargetKind
	Human int
}

var PlayerTarget = Target{Kind: TargetPlayer}

func HumanTarget(index int) Target {
	return Target{Kind: TargetHuman, Human: index}
}
