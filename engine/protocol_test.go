package engine

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"zombies/game"
	"zombies/geom"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadState(t *testing.T) {
	t.Run("parsing one turn", func(t *testing.T) {
		r := reader("0 0\n2\n0 5000 0\n3 100 200\n1\n4 8000 0 7600 0\n")

		got, err := ReadState(r, 30)

		require.NoError(t, err)
		want := game.NewState(game.NewPlayer(geom.Point{X: 0, Y: 0}),
			[]game.Human{game.NewHuman(0, geom.Point{X: 5000, Y: 0}), game.NewHuman(3, geom.Point{X: 100, Y: 200})},
			[]game.Zombie{game.NewZombie(4, geom.Point{X: 8000, Y: 0}, geom.Point{X: 7600, Y: 0})}, 30)
		require.Equal(t, want, got)
	})

	t.Run("reading consecutive turns", func(t *testing.T) {
		r := reader("1 2\n0\n0\n3 4\n0\n0")

		first, err := ReadState(r, 0)
		require.NoError(t, err)
		second, err := ReadState(r, 0)
		require.NoError(t, err, "Last line may lack a newline")

		require.Equal(t, geom.Point{X: 1, Y: 2}, first.Player.Pos)
		require.Equal(t, geom.Point{X: 3, Y: 4}, second.Player.Pos)
		_, err = ReadState(r, 0)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("defaulting bad fields to zero", func(t *testing.T) {
		r := reader("abc 100\n1\n7 x\n-2\n")

		got, err := ReadState(r, 0)

		require.NoError(t, err)
		require.Equal(t, geom.Point{X: 0, Y: 100}, got.Player.Pos)
		require.Equal(t, []game.Human{game.NewHuman(7, geom.Point{X: 0, Y: 0})}, got.Humans)
		require.Empty(t, got.Zombies, "Negative counts read no entities")
	})

	t.Run("reporting a turn cut short", func(t *testing.T) {
		_, err := ReadState(reader("0 0\n2\n0 5000 0\n"), 0)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.ErrorContains(t, err, "human 1")
	})

	t.Run("reading an absurd count until the input runs out", func(t *testing.T) {
		_, err := ReadState(reader("0 0\n9223372036854775807\n"), 0)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.ErrorContains(t, err, "human 0")
	})

	t.Run("reporting no input", func(t *testing.T) {
		_, err := ReadState(reader(""), 0)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestWriteDecision(t *testing.T) {
	t.Run("with a label", func(t *testing.T) {
		var b bytes.Buffer

		err := WriteDecision(&b, game.NewLabeledPlayer(geom.Point{X: 1000, Y: 0}, "Escorting"))

		require.NoError(t, err)
		require.Equal(t, "1000 0 Escorting\n", b.String())
	})

	t.Run("without a label", func(t *testing.T) {
		var b bytes.Buffer

		err := WriteDecision(&b, game.NewPlayer(geom.Point{X: 5, Y: 6}))

		require.NoError(t, err)
		require.Equal(t, "5 6\n", b.String())
	})
}
