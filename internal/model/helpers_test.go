package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sq converts "e4" style names into coordinates for readable tests.
func sq(name string) Coordinate {
	return Coordinate{Row: int(name[1] - '1'), Col: int(name[0] - 'a')}
}

func mv(from, to string) Move {
	return Move{From: sq(from), To: sq(to)}
}

func promo(from, to string, t PieceType) Move {
	return Move{From: sq(from), To: sq(to), Promotion: t}
}

var letterTypes = map[byte]PieceType{
	'K': King, 'Q': Queen, 'R': Rook, 'B': Bishop, 'N': Knight, 'P': Pawn,
}

// setup builds a position from tokens like "Ke1 Ra1 ke8 pa7": upper case is
// White, lower case Black. It starts with no castling rights.
func setup(turn Color, pieces string) Position {
	pos := Position{Turn: turn, EnPassant: NoSquare}
	for _, tok := range strings.Fields(pieces) {
		color := White
		if strings.ToLower(tok[:1]) == tok[:1] {
			color = Black
		}
		pos.Board.Place(sq(tok[1:]), Piece{Type: letterTypes[strings.ToUpper(tok)[0]], Color: color})
	}
	return pos
}

func play(t *testing.T, g *Game, moves ...Move) *Game {
	t.Helper()
	for _, m := range moves {
		next, err := g.Play(m)
		require.NoError(t, err, "move %v in\n%v", m, g.Board.String())
		g = next
	}
	return g
}

func destinations(moves []Move) []Coordinate {
	out := make([]Coordinate, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To)
	}
	return out
}

func squares(names ...string) []Coordinate {
	out := make([]Coordinate, 0, len(names))
	for _, n := range names {
		out = append(out, sq(n))
	}
	return out
}
