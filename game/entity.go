package game

import (
	"fmt"

	"zombies/geom"
)

// Player is the controlled agent. Label is free text shown next to the
// destination and has no effect on the simulation.
type Player struct {
	Pos   geom.Point
	Label string
}

func NewPlayer(pos geom.Point) Player {
	return Player{Pos: pos}
}

func NewLabeledPlayer(pos geom.Point, label string) Player {
	return Player{Pos: pos, Label: label}
}

// String formats the player as the turn's output line.
func (p Player) String() string {
	if p.Label == "" {
		return p.Pos.String()
	}
	return fmt.Sprintf("%s %s", p.Pos, p.Label)
}

type Human struct {
	ID         int
	Pos        geom.Point
	TargetedBy int // Index of the closest zombie hunting this human, or NoZombie
}

func NewHuman(id int, pos geom.Point) Human {
	return Human{ID: id, Pos: pos, TargetedBy: NoZombie}
}

type Zombie struct {
	ID           int
	Pos          geom.Point
	Next         geom.Point // Move already committed for the coming turn
	Target       Target
	TargetDistSq int // Squared distance from Next to the target
}

func NewZombie(id int, pos, next geom.Point) Zombie {
	return Zombie{ID: id, Pos: pos, Next: next, Target: PlayerTarget, TargetDistSq: unreachable}
}

func (z Zombie) String() string {
	return fmt.Sprintf("{id: %d, pos: (%s), next: (%s)}", z.ID, z.Pos, z.Next)
}
