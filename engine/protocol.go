package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"zombies/game"
	"zombies/geom"
)

// ReadState parses one turn of referee input: the player's position, then
// the humans and the zombies, each preceded by their count. Fields that are
// missing or not numbers read as zero. score is carried over since the
// referee never sends it. io.EOF is returned as is when no turn started.
func ReadState(r *bufio.Reader, score int) (game.State, error) {
	p, err := readInts(r, 2)
	if err != nil {
		return game.State{}, err
	}

	n, err := readInts(r, 1)
	if err != nil {
		return game.State{}, fmt.Errorf("failed to read human count: %w", unexpected(err))
	}
	humans := []game.Human{}
	for i := range n[0] {
		f, err := readInts(r, 3)
		if err != nil {
			return game.State{}, fmt.Errorf("failed to read human %d: %w", i, unexpected(err))
		}
		humans = append(humans, game.NewHuman(f[0], geom.Point{X: f[1], Y: f[2]}))
	}

	n, err = readInts(r, 1)
	if err != nil {
		return game.State{}, fmt.Errorf("failed to read zombie count: %w", unexpected(err))
	}
	zombies := []game.Zombie{}
	for i := range n[0] {
		f, err := readInts(r, 5)
		if err != nil {
			return game.State{}, fmt.Errorf("failed to read zombie %d: %w", i, unexpected(err))
		}
		zombies = append(zombies, game.NewZombie(f[0], geom.Point{X: f[1], Y: f[2]}, geom.Point{X: f[3], Y: f[4]}))
	}

	return game.NewState(game.NewPlayer(geom.Point{X: p[0], Y: p[1]}), humans, zombies, score), nil
}

// WriteDecision prints the player's destination as one output line.
func WriteDecision(w io.Writer, p game.Player) error {
	if _, err := fmt.Fprintln(w, p.String()); err != nil {
		return fmt.Errorf("failed to write decision: %w", err)
	}
	return nil
}

func readInts(r *bufio.Reader, n int) ([]int, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
		return nil, err
	}
	fields := strings.Fields(line)
	values := make([]int, n)
	for i := range min(n, len(fields)) {
		values[i], _ = strconv.Atoi(fields[i])
	}
	return values, nil
}

// unexpected reports a turn cut short as io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
