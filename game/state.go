package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"zombies/geom"
	"zombies/meta"
)

const unreachable = math.MaxInt

type StateHash uint64

// State is a snapshot of one turn. Operations on State always return a new
// copy; the receiver is never modified.
type State struct {
	Player  Player
	Humans  []Human
	Zombies []Zombie
	Score   int
}

func NewState(player Player, humans []Human, zombies []Zombie, score int) State {
	return State{Player: player, Humans: humans, Zombies: zombies, Score: score}
}

// Copy returns a state that shares no slices with s.
func (s State) Copy() State {
	humans := make([]Human, len(s.Humans))
	copy(humans, s.Humans)
	zombies := make([]Zombie, len(s.Zombies))
	copy(zombies, s.Zombies)
	return State{Player: s.Player, Humans: humans, Zombies: zombies, Score: s.Score}
}

// Lost reports whether every human is dead.
func (s State) Lost() bool {
	return len(s.Humans) == 0
}

// Won reports whether every zombie is dead while someone survived.
func (s State) Won() bool {
	return len(s.Zombies) == 0 && !s.Lost()
}

func (s State) Terminal() bool {
	return len(s.Humans) == 0 || len(s.Zombies) == 0
}

// Step plays one turn: the policy picks the player's destination from the
// freshly targeted state, then everyone moves, kills are resolved and zombies
// commit their next move.
func (s State) Step(rules Rules, policy Policy) State {
	next := s.Copy()
	next.clearTargets()
	next.resolveTargets()

	dest := policy(next, rules)
	next.Player.Pos = geom.MoveTowardPoint(next.Player.Pos, rules.Clamp(dest.Pos), rules.PlayerStep)
	next.Player.Label = dest.Label

	next.moveZombies()
	next.killZombies(rules)
	next.killHumans()
	next.planZombies(rules)
	return next
}

// Retarget returns a copy of s with targets recomputed from the zombies'
// committed moves.
func (s State) Retarget() State {
	next := s.Copy()
	next.clearTargets()
	next.resolveTargets()
	return next
}

// Plan returns a copy of s where every zombie has committed its first move
// toward whatever is closest to it, as the game does before the first turn.
func (s State) Plan(rules Rules) State {
	next := s.Copy()
	next.planZombies(rules)
	return next
}

// Follow is the policy that always heads for p.
func Follow(p Player) Policy {
	return func(State, Rules) Player {
		return p
	}
}

// Predict rolls policy forward from s until the game ends or maxTurns turns
// were played, returning every state reached.
func (s State) Predict(rules Rules, policy Policy, maxTurns int) []State {
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	flow := []State{}
	state := s
	for len(flow) < maxTurns {
		state = state.Step(rules, policy)
		flow = append(flow, state)
		if state.Terminal() {
			break
		}
	}
	return flow
}

func (s *State) clearTargets() {
	for i := range s.Humans {
		s.Humans[i].TargetedBy = NoZombie
	}
	for i := range s.Zombies {
		s.Zombies[i].Target = PlayerTarget
		s.Zombies[i].TargetDistSq = unreachable
	}
}

// resolveTargets points every zombie at whatever is closest to its committed
// move, the player winning ties, and lets each hunted human remember the
// closest zombie hunting it.
func (s *State) resolveTargets() {
	for zi := range s.Zombies {
		z := &s.Zombies[zi]
		z.Target = PlayerTarget
		z.TargetDistSq = geom.DistSq(z.Next, s.Player.Pos)
		for hi, h := range s.Humans {
			if d := geom.DistSq(z.Next, h.Pos); d < z.TargetDistSq {
				z.Target = HumanTarget(hi)
				z.TargetDistSq = d
			}
		}

		if z.Target.Kind != TargetHuman {
			continue
		}
		h := &s.Humans[z.Target.Human]
		if h.TargetedBy == NoZombie || z.TargetDistSq < s.zombie(h.TargetedBy).TargetDistSq {
			h.TargetedBy = zi
		}
	}
}

func (s *State) moveZombies() {
	for i := range s.Zombies {
		s.Zombies[i].Pos = s.Zombies[i].Next
	}
}

func (s *State) killZombies(rules Rules) {
	rangeSq := rules.KillRange * rules.KillRange
	survivors := make([]Zombie, 0, len(s.Zombies))
	for _, z := range s.Zombies {
		if geom.DistSq(z.Pos, s.Player.Pos) > rangeSq {
			survivors = append(survivors, z)
		}
	}
	kills := len(s.Zombies) - len(survivors)
	s.Score += rules.TurnReward(kills, len(s.Humans))
	s.Zombies = survivors
}

func (s *State) killHumans() {
	survivors := make([]Human, 0, len(s.Humans))
	for _, h := range s.Humans {
		if !s.zombieAt(h.Pos) {
			survivors = append(survivors, h)
		}
	}
	s.Humans = survivors
}

func (s *State) zombieAt(p geom.Point) bool {
	for _, z := range s.Zombies {
		if z.Pos == p {
			return true
		}
	}
	return false
}

// planZombies retargets the survivors from where they stand and commits
// their move for the coming turn.
func (s *State) planZombies(rules Rules) {
	for i := range s.Zombies {
		s.Zombies[i].Next = s.Zombies[i].Pos
	}
	s.clearTargets()
	s.resolveTargets()
	for i := range s.Zombies {
		z := &s.Zombies[i]
		target := s.TargetPos(z.Target)
		z.Next = geom.MoveTowardPoint(z.Pos, target, rules.ZombieStep)
		z.TargetDistSq = geom.DistSq(z.Next, target)
	}
}

// TargetPos returns the position of a zombie's target.
func (s State) TargetPos(t Target) geom.Point {
	switch t.Kind {
	case TargetPlayer:
		return s.Player.Pos
	case TargetHuman:
		return s.human(t.Human).Pos
	default:
		panic(fmt.Sprintf("unknown target kind %d", t.Kind))
	}
}

// Hunter returns the zombie recorded as hunting the ith human.
func (s State) Hunter(i int) (Zombie, bool) {
	h := s.human(i)
	if h.TargetedBy == NoZombie {
		return Zombie{}, false
	}
	return s.zombie(h.TargetedBy), true
}

func (s State) human(i int) Human {
	if i < 0 || i >= len(s.Humans) {
		panic(fmt.Sprintf("human index %d out of range [0, %d)", i, len(s.Humans)))
	}
	return s.Humans[i]
}

func (s State) zombie(i int) Zombie {
	if i < 0 || i >= len(s.Zombies) {
		panic(fmt.Sprintf("zombie index %d out of range [0, %d)", i, len(s.Zombies)))
	}
	return s.Zombies[i]
}

// Hash fingerprints the positions and score of the state.
func (s State) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 8)
	write := func(values ...int) {
		for _, v := range values {
			binary.LittleEndian.PutUint64(buf, uint64(v))
			h.Write(buf)
		}
	}
	write(s.Player.Pos.X, s.Player.Pos.Y, s.Score, len(s.Humans), len(s.Zombies))
	for _, hu := range s.Humans {
		write(hu.ID, hu.Pos.X, hu.Pos.Y)
	}
	for _, z := range s.Zombies {
		write(z.ID, z.Pos.X, z.Pos.Y, z.Next.X, z.Next.Y)
	}
	return StateHash(h.Sum64())
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P: (%s), %dH, %dZ:", s.Player.Pos, len(s.Humans), len(s.Zombies))
	for _, z := range s.Zombies {
		fmt.Fprintf(&b, " %s", z)
	}
	return b.String()
}

// TargetSummary describes who hunts whom, by entity id, with -1 for nobody.
func (s State) TargetSummary() (zombies, humans string) {
	zs := make([]string, len(s.Zombies))
	for i, z := range s.Zombies {
		target := -1
		if z.Target.Kind == TargetHuman {
			target = s.human(z.Target.Human).ID
		}
		zs[i] = fmt.Sprintf("%d -> %d", z.ID, target)
	}
	hs := make([]string, len(s.Humans))
	for i, h := range s.Humans {
		hunter := -1
		if z, ok := s.Hunter(i); ok {
			hunter = z.ID
		}
		hs[i] = fmt.Sprintf("%d -> %d", h.ID, hunter)
	}
	return strings.Join(zs, " | "), strings.Join(hs, " | ")
}
