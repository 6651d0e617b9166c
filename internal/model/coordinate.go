package model

import (
	"fmt"
	"iter"
)

// Coordinate addresses a square by row and column. Row 0 is White's back
// rank. Values outside 0..7 are representable and must be checked with
// WithinBounds before they reach a Board.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoSquare marks an absent coordinate, e.g. no en passant target.
var NoSquare = Coordinate{Row: -1, Col: -1}

func (c Coordinate) Offset(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Coordinate) Up(steps int) Coordinate    { return c.Offset(steps, 0) }
func (c Coordinate) Down(steps int) Coordinate  { return c.Offset(-steps, 0) }
func (c Coordinate) Right(steps int) Coordinate { return c.Offset(0, steps) }
func (c Coordinate) Left(steps int) Coordinate  { return c.Offset(0, -steps) }

func (c Coordinate) UpRight(steps int) Coordinate   { return c.Offset(steps, steps) }
func (c Coordinate) UpLeft(steps int) Coordinate    { return c.Offset(steps, -steps) }
func (c Coordinate) DownRight(steps int) Coordinate { return c.Offset(-steps, steps) }
func (c Coordinate) DownLeft(steps int) Coordinate  { return c.Offset(-steps, -steps) }

// direction is a single step on the board.
type direction struct {
	dRow, dCol int
}

var (
	orthogonalDirs = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs     = [8]direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	kingDirs       = [8]direction{{1, -1}, {1, 0}, {1, 1}, {0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

func (c Coordinate) step(d direction, steps int) Coordinate {
	return c.Offset(d.dRow*steps, d.dCol*steps)
}

// KnightOffsets returns the eight knight jumps from c. Some may be out of bounds.
func (c Coordinate) KnightOffsets() [8]Coordinate {
	var out [8]Coordinate
	for i, d := range knightDirs {
		out[i] = c.step(d, 1)
	}
	return out
}

// KingOffsets returns the eight neighbours of c. Some may be out of bounds.
func (c Coordinate) KingOffsets() [8]Coordinate {
	var out [8]Coordinate
	for i, d := range kingDirs {
		out[i] = c.step(d, 1)
	}
	return out
}

func (c Coordinate) WithinBounds() bool {
	return c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8
}

// IsLight reports whether c is a light square. a1 (0,0) is dark.
func (c Coordinate) IsLight() bool {
	return (c.Row+c.Col)%2 == 1
}

func (c Coordinate) String() string {
	if !c.WithinBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// AllCoordinates yields the 64 squares in row-major order, row 0 first.
func AllCoordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if !yield(Coordinate{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}
