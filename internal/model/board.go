package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

type PieceType string

const (
	NoPieceType PieceType = ""
	King        PieceType = "king"
	Queen       PieceType = "queen"
	Rook        PieceType = "rook"
	Bishop      PieceType = "bishop"
	Knight      PieceType = "knight"
	Pawn        PieceType = "pawn"
)

// PromotionTypes lists the pieces a pawn may become, in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (p PieceType) letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "."
}

type Color string

const (
	NoColor Color = ""
	White   Color = "white"
	Black   Color = "black"
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// forward is the row delta of a pawn advance for c.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// backRank is the row holding c's king and rooks at the start.
func (c Color) backRank() int {
	if c == Black {
		return 7
	}
	return 0
}

// Piece is a single board cell. The zero value is an empty cell.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

var NoPiece = Piece{}

func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

func (p Piece) Is(t PieceType, c Color) bool {
	return p.Type == t && p.Color == c
}

func (p Piece) String() string {
	if p.Color == Black {
		return strings.ToLower(p.Type.letter())
	}
	return p.Type.letter()
}

type pieceJSON Piece

// MarshalJSON encodes an empty cell as null.
func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(pieceJSON(p))
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = NoPiece
		return nil
	}
	var v pieceJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Piece(v)
	return nil
}

// Board is an 8x8 grid indexed [row][col]. It is a value type: assigning a
// Board copies every cell, so a copy never shares storage with its source.
//
// Board does not validate coordinates. Callers check WithinBounds first.
type Board [8][8]Piece

var backRankTypes = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting arrangement.
func NewBoard() Board {
	var b Board
	for col, t := range backRankTypes {
		b[0][col] = Piece{Type: t, Color: White}
		b[1][col] = Piece{Type: Pawn, Color: White}
		b[6][col] = Piece{Type: Pawn, Color: Black}
		b[7][col] = Piece{Type: t, Color: Black}
	}
	return b
}

func (b *Board) PieceAt(c Coordinate) Piece {
	return b[c.Row][c.Col]
}

func (b *Board) Place(c Coordinate, p Piece) {
	b[c.Row][c.Col] = p
}

func (b *Board) Remove(c Coordinate) {
	b[c.Row][c.Col] = NoPiece
}

func (b *Board) IsEmpty(c Coordinate) bool {
	return b[c.Row][c.Col].IsEmpty()
}

func (b *Board) ColorAt(c Coordinate) Color {
	return b[c.Row][c.Col].Color
}

func (b *Board) DeepCopy() Board {
	return *b
}

// KingSquare finds the king of the given color.
func (b *Board) KingSquare(color Color) (Coordinate, bool) {
	for c := range AllCoordinates() {
		if b.PieceAt(c).Is(King, color) {
			return c, true
		}
	}
	return NoSquare, false
}

// String draws the board with row 7 on top, one letter per piece.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
