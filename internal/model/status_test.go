package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foolsMate(t *testing.T) *Game {
	return play(t, NewGame(), mv("f2", "f3"), mv("e7", "e5"), mv("g2", "g4"), mv("d8", "h4"))
}

func TestFoolsMate(t *testing.T) {
	g := foolsMate(t)
	assert.True(t, g.IsCheck())
	assert.True(t, g.IsCheckmate())
	assert.False(t, g.IsStalemate())
	assert.Empty(t, g.AllLegalMoves())
	assert.Equal(t, Checkmate, g.Resolve())
	assert.Equal(t, Black, g.Winner())

	_, ok := g.AttemptMove(mv("e2", "e3"))
	assert.False(t, ok)
}

func TestCheckIsNotMateWhenKingEscapes(t *testing.T) {
	pos := setup(Black, "Rg8 kh8 Ka1")
	assert.True(t, pos.IsCheck())
	assert.False(t, pos.IsCheckmate(), "king can take the rook")
	assert.Equal(t, Unresolved, pos.Resolve())
	assert.Equal(t, NoColor, pos.Winner())
}

func TestBackRankMate(t *testing.T) {
	pos := setup(Black, "Ra8 kh8 pg7 ph7 Ka1")
	assert.True(t, pos.IsCheckmate())
	assert.Equal(t, White, pos.Winner())
}

func TestStalemate(t *testing.T) {
	g := play(t, FromPosition(setup(White, "ka8 Kc8 Qb1")), mv("b1", "b6"))
	assert.False(t, g.IsCheck())
	assert.True(t, g.IsStalemate())
	assert.False(t, g.IsCheckmate())
	assert.Equal(t, Stalemate, g.Resolve())
	assert.Equal(t, NoColor, g.Winner())
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		pieces string
		want   bool
	}{
		{"bare kings", "Ke1 ke8", true},
		{"king and bishop", "Ke1 Bc1 ke8", true},
		{"king and knight", "Ke1 Nb1 ke8", true},
		{"same colored bishops", "Ke1 Bc1 ke8 bf8", true},
		{"opposite colored bishops", "Ke1 Bc1 ke8 bc8", false},
		{"two bishops one side", "Ke1 Bc1 Bf1 ke8", false},
		{"bishop against knight", "Ke1 Bc1 ke8 nb8", false},
		{"two knights", "Ke1 Nb1 Ng1 ke8", false},
		{"pawn", "Ke1 Pa2 ke8", false},
		{"rook", "Ke1 Ra1 ke8", false},
		{"queen", "Ke1 qd8 ke8", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := setup(White, tt.pieces)
			assert.Equal(t, tt.want, pos.IsInsufficientMaterial())
		})
	}
	assert.False(t, NewGame().IsInsufficientMaterial())
}

func TestInsufficientMaterialResolution(t *testing.T) {
	g := play(t, FromPosition(setup(White, "Ke1 Nc3 ke8 qd5")), mv("c3", "d5"))
	assert.Equal(t, InsufficientMaterial, g.Resolve())
}

func TestThreefoldRepetition(t *testing.T) {
	cycle := []Move{mv("g1", "f3"), mv("g8", "f6"), mv("f3", "g1"), mv("f6", "g8")}

	g := play(t, NewGame(), cycle...)
	assert.Equal(t, 2, g.Repetitions())
	assert.False(t, g.IsDrawClaimable())

	g = play(t, g, cycle[:3]...)
	assert.False(t, g.IsDrawClaimable())

	g = play(t, g, cycle[3])
	assert.Equal(t, 3, g.Repetitions())
	assert.True(t, g.IsDrawClaimable())
	assert.Equal(t, Unresolved, g.Resolve(), "a claimable draw does not end the game")

	g = play(t, g, mv("e2", "e3"))
	assert.Equal(t, 1, g.Repetitions())
	assert.Empty(t, g.Meta.History)
	assert.False(t, g.IsDrawClaimable())

	g = play(t, g, mv("e7", "e6"))
	g = play(t, g, cycle...)
	assert.Equal(t, 2, g.Repetitions(), "counting restarts from the new baseline")
}

func TestFiftyMoveRule(t *testing.T) {
	pos := setup(White, "Ke1 Ra1 ke8")
	g, err := Restore(Snapshot{Position: pos, HalfMoveClock: 98}, nil)
	require.NoError(t, err)

	g = play(t, g, mv("a1", "a2"))
	assert.Equal(t, 99, g.Meta.HalfMoveClock)
	assert.False(t, g.IsDrawClaimable())

	g = play(t, g, mv("e8", "d8"))
	assert.Equal(t, 100, g.Meta.HalfMoveClock)
	assert.True(t, g.IsDrawClaimable())

	g = play(t, g, mv("a2", "a8"))
	assert.Equal(t, 101, g.Meta.HalfMoveClock)
	assert.True(t, g.IsDrawClaimable())
}
