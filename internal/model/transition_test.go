package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func castlingPosition(turn Color) Position {
	pos := setup(turn, "Ke1 Ra1 Rh1 ke8 ra8 rh8 pc7")
	pos.Castling = AllCastlingRights
	return pos
}

func TestCastlingMovesRook(t *testing.T) {
	g := play(t, FromPosition(castlingPosition(White)), mv("e1", "g1"))
	assert.Equal(t, Piece{Type: King, Color: White}, g.Board.PieceAt(sq("g1")))
	assert.Equal(t, Piece{Type: Rook, Color: White}, g.Board.PieceAt(sq("f1")))
	assert.True(t, g.Board.IsEmpty(sq("h1")))
	assert.True(t, g.Board.IsEmpty(sq("e1")))

	g = play(t, g, mv("e8", "c8"))
	assert.Equal(t, Piece{Type: King, Color: Black}, g.Board.PieceAt(sq("c8")))
	assert.Equal(t, Piece{Type: Rook, Color: Black}, g.Board.PieceAt(sq("d8")))
	assert.True(t, g.Board.IsEmpty(sq("a8")))
	assert.Equal(t, CastlingRights{}, g.Castling)
}

func TestCastlingRightsRevocation(t *testing.T) {
	tests := []struct {
		name string
		turn Color
		move Move
		want CastlingRights
	}{
		{"king move", White, mv("e1", "e2"), CastlingRights{BlackKingside: true, BlackQueenside: true}},
		{"queenside rook", White, mv("a1", "b1"), CastlingRights{WhiteKingside: true, BlackKingside: true, BlackQueenside: true}},
		{"kingside rook", White, mv("h1", "g1"), CastlingRights{WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}},
		{"rook captures rook", Black, mv("h8", "h1"), CastlingRights{WhiteQueenside: true, BlackQueenside: true}},
		{"unrelated move", Black, mv("c7", "c6"), AllCastlingRights},
		{"black king move", Black, mv("e8", "d8"), CastlingRights{WhiteKingside: true, WhiteQueenside: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := play(t, FromPosition(castlingPosition(tt.turn)), tt.move)
			assert.Equal(t, tt.want, g.Castling)
		})
	}
}

func TestCastlingRightsNeverReturn(t *testing.T) {
	g := play(t, FromPosition(castlingPosition(White)), mv("h1", "g1"), mv("c7", "c6"), mv("g1", "h1"))
	assert.False(t, g.Castling.WhiteKingside)
	assert.NotContains(t, destinations(play(t, g, mv("c6", "c5")).LegalMoves(sq("e1"))), sq("g1"))
}

func TestEnPassantTargetBookkeeping(t *testing.T) {
	g := play(t, NewGame(), mv("e2", "e4"))
	assert.Equal(t, sq("e3"), g.EnPassant)

	g = play(t, g, mv("g8", "f6"))
	assert.False(t, g.HasEnPassant())

	g = play(t, g, mv("d2", "d3"))
	assert.False(t, g.HasEnPassant(), "single push sets no target")

	g = play(t, g, mv("c7", "c5"))
	assert.Equal(t, sq("c6"), g.EnPassant)
}

func TestPromotionReplacesPawn(t *testing.T) {
	g := play(t, FromPosition(setup(White, "Pb7 na8 Ke1 kh8")), promo("b7", "a8", Knight))
	assert.Equal(t, Piece{Type: Knight, Color: White}, g.Board.PieceAt(sq("a8")))
	assert.True(t, g.Board.IsEmpty(sq("b7")))
	assert.Equal(t, 0, g.Meta.HalfMoveClock)

	g = play(t, FromPosition(setup(Black, "pd2 Ke8 ka8")), promo("d2", "d1", Queen))
	assert.Equal(t, Piece{Type: Queen, Color: Black}, g.Board.PieceAt(sq("d1")))
}

func TestHalfMoveClock(t *testing.T) {
	g := play(t, NewGame(), mv("g1", "f3"), mv("g8", "f6"))
	assert.Equal(t, 2, g.Meta.HalfMoveClock)
	assert.Len(t, g.Meta.History, 2)

	g = play(t, g, mv("e2", "e4"))
	assert.Equal(t, 0, g.Meta.HalfMoveClock, "pawn move resets")
	assert.Empty(t, g.Meta.History)

	g = play(t, g, mv("f6", "e4"))
	assert.Equal(t, 0, g.Meta.HalfMoveClock, "capture resets")

	g = play(t, g, mv("b1", "c3"))
	assert.Equal(t, 1, g.Meta.HalfMoveClock)
}

func TestTurnAlternates(t *testing.T) {
	g := NewGame()
	assert.Equal(t, White, g.Turn)
	g = play(t, g, mv("e2", "e4"))
	assert.Equal(t, Black, g.Turn)
	g = play(t, g, mv("e7", "e5"))
	assert.Equal(t, White, g.Turn)
}

// Playing a move and then its mirror does not restore the prior state:
// castling rights and the en passant target do not come back.
func TestMirrorMoveIsNotAnInverse(t *testing.T) {
	start := FromPosition(castlingPosition(White))
	g := play(t, start, mv("e1", "e2"), mv("e8", "e7"), mv("e2", "e1"), mv("e7", "e8"))
	assert.Equal(t, start.Board, g.Board)
	assert.Equal(t, start.Turn, g.Turn)
	assert.NotEqual(t, start.Position, g.Position)
	assert.NotEqual(t, start.Castling, g.Castling)

	opened := play(t, NewGame(), mv("g1", "f3"), mv("g8", "f6"), mv("f3", "g1"), mv("f6", "g8"))
	assert.Equal(t, NewGame().Position, opened.Position, "knight shuffles are reversible")

	pushed := play(t, NewGame(), mv("e2", "e4"))
	require.True(t, pushed.HasEnPassant())
	back := play(t, pushed, mv("g8", "f6"), mv("e4", "e5"), mv("f6", "g8"))
	assert.False(t, back.HasEnPassant())
}
