package model

import (
	"encoding/json"
	"fmt"
)

// CastlingRights only ever lose flags during a game.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

var AllCastlingRights = CastlingRights{true, true, true, true}

func (r CastlingRights) Has(color Color, kingside bool) bool {
	switch {
	case color == White && kingside:
		return r.WhiteKingside
	case color == White:
		return r.WhiteQueenside
	case color == Black && kingside:
		return r.BlackKingside
	case color == Black:
		return r.BlackQueenside
	}
	return false
}

func (r *CastlingRights) revoke(color Color) {
	switch color {
	case White:
		r.WhiteKingside, r.WhiteQueenside = false, false
	case Black:
		r.BlackKingside, r.BlackQueenside = false, false
	}
}

// revokeCorner drops the right tied to the rook corner c, if c is one.
func (r *CastlingRights) revokeCorner(c Coordinate) {
	switch c {
	case Coordinate{Row: 0, Col: 0}:
		r.WhiteQueenside = false
	case Coordinate{Row: 0, Col: 7}:
		r.WhiteKingside = false
	case Coordinate{Row: 7, Col: 0}:
		r.BlackQueenside = false
	case Coordinate{Row: 7, Col: 7}:
		r.BlackKingside = false
	}
}

// rookCorner is the starting square of the rook castling uses.
func rookCorner(color Color, kingside bool) Coordinate {
	if kingside {
		return Coordinate{Row: color.backRank(), Col: 7}
	}
	return Coordinate{Row: color.backRank(), Col: 0}
}

// Position is everything that decides which moves are legal. It holds no
// references, so assignment produces an independent copy, and == compares
// two positions for repetition.
type Position struct {
	Board     Board
	Turn      Color
	Castling  CastlingRights
	EnPassant Coordinate
}

// StartingPosition returns the standard initial arrangement with White to move.
func StartingPosition() Position {
	return Position{
		Board:     NewBoard(),
		Turn:      White,
		Castling:  AllCastlingRights,
		EnPassant: NoSquare,
	}
}

func (p *Position) HasEnPassant() bool {
	return p.EnPassant.WithinBounds()
}

func (p *Position) IsAttacked(target Coordinate, by Color) bool {
	return p.Board.IsAttacked(target, by)
}

// apply moves pieces on the board only: the moving piece, the castling rook,
// a pawn taken en passant and promotion. Turn and rights are left alone.
func (p *Position) apply(m Move) {
	piece := p.Board.PieceAt(m.From)
	p.Board.Remove(m.From)
	p.Board.Place(m.To, piece)

	switch piece.Type {
	case King:
		switch m.To.Col - m.From.Col {
		case 2:
			p.Board.Place(m.To.Left(1), p.Board.PieceAt(m.To.Right(1)))
			p.Board.Remove(m.To.Right(1))
		case -2:
			p.Board.Place(m.To.Right(1), p.Board.PieceAt(m.To.Left(2)))
			p.Board.Remove(m.To.Left(2))
		}
	case Pawn:
		if p.HasEnPassant() && m.To == p.EnPassant {
			p.Board.Remove(Coordinate{Row: m.From.Row, Col: m.To.Col})
		}
		if m.To.Row == piece.Color.Opposite().backRank() && m.Promotion != NoPieceType {
			p.Board.Place(m.To, Piece{Type: m.Promotion, Color: piece.Color})
		}
	}
}

// advance updates turn, castling rights and the en passant target after m.
// pre is the position before apply ran.
func (p *Position) advance(pre *Position, m Move) {
	moved := pre.Board.PieceAt(m.From)

	p.Turn = pre.Turn.Opposite()

	if moved.Type == King {
		p.Castling.revoke(moved.Color)
	}
	p.Castling.revokeCorner(m.From)
	p.Castling.revokeCorner(m.To)

	p.EnPassant = NoSquare
	if moved.Type == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		p.EnPassant = Coordinate{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}
}

// commit is apply followed by advance.
func (p *Position) commit(m Move) {
	pre := *p
	p.apply(m)
	p.advance(&pre, m)
}

// isCapture reports whether m takes a piece in p, en passant included.
func (p *Position) isCapture(m Move) bool {
	if !p.Board.IsEmpty(m.To) {
		return true
	}
	return p.Board.PieceAt(m.From).Type == Pawn && p.HasEnPassant() && m.To == p.EnPassant
}

// Validate checks a position that came from outside the engine.
func (p *Position) Validate() error {
	if p.Turn != White && p.Turn != Black {
		return fmt.Errorf("%w: turn %q", ErrInvalidPosition, p.Turn)
	}
	if p.EnPassant != NoSquare && !p.validEnPassant() {
		return fmt.Errorf("%w: en passant target %v", ErrInvalidPosition, p.EnPassant)
	}
	kings := map[Color]int{}
	for c := range AllCoordinates() {
		piece := p.Board.PieceAt(c)
		if piece.IsEmpty() {
			continue
		}
		if piece.Color != White && piece.Color != Black {
			return fmt.Errorf("%w: piece color %q at %v", ErrInvalidPosition, piece.Color, c)
		}
		switch piece.Type {
		case King:
			kings[piece.Color]++
		case Queen, Rook, Bishop, Knight, Pawn:
		default:
			return fmt.Errorf("%w: piece type %q at %v", ErrInvalidPosition, piece.Type, c)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: need one king per side", ErrInvalidPosition)
	}
	return nil
}

type positionJSON struct {
	Board     Board          `json:"board"`
	Turn      Color          `json:"turn"`
	Castling  CastlingRights `json:"castling"`
	EnPassant *Coordinate    `json:"enPassant"`
}

// MarshalJSON writes a missing en passant target as null.
func (p Position) MarshalJSON() ([]byte, error) {
	v := positionJSON{Board: p.Board, Turn: p.Turn, Castling: p.Castling}
	if p.HasEnPassant() {
		ep := p.EnPassant
		v.EnPassant = &ep
	}
	return json.Marshal(v)
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var v positionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Position{Board: v.Board, Turn: v.Turn, Castling: v.Castling, EnPassant: NoSquare}
	if v.EnPassant != nil {
		p.EnPassant = *v.EnPassant
	}
	return nil
}

// validEnPassant reports whether EnPassant could follow a double push by the
// side that just moved: the target and the square skipped from are empty and
// that side's pawn stands just beyond the target.
func (p *Position) validEnPassant() bool {
	target := p.EnPassant
	if !target.WithinBounds() {
		return false
	}
	pusher := p.Turn.Opposite()
	forward := pusher.forward()
	if target.Row != pusher.backRank()+2*forward {
		return false
	}
	return p.Board.IsEmpty(target) &&
		p.Board.IsEmpty(target.Up(-forward)) &&
		p.Board.PieceAt(target.Up(forward)).Is(Pawn, pusher)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
