package model

import "slices"

// CheckMove reports why m is not legal in p, or nil if it is.
func (p *Position) CheckMove(m Move) error {
	if !m.From.WithinBounds() || !m.To.WithinBounds() {
		return ErrOutOfBounds
	}
	piece := p.Board.PieceAt(m.From)
	if piece.IsEmpty() {
		return ErrEmptySquare
	}
	if piece.Color != p.Turn {
		return ErrNotYourTurn
	}
	promoting := piece.Type == Pawn && m.To.Row == piece.Color.Opposite().backRank()
	if promoting != (m.Promotion != NoPieceType) {
		return ErrMalformedPromotion
	}
	if promoting && !slices.Contains(PromotionTypes[:], m.Promotion) {
		return ErrMalformedPromotion
	}
	if !slices.Contains(p.PseudoLegalMoves(m.From), m) {
		return ErrIllegalMove
	}
	if !p.leavesKingSafe(m) {
		return ErrKingInCheck
	}
	return nil
}

func (p *Position) IsLegal(m Move) bool {
	return p.CheckMove(m) == nil
}

// LegalMoves returns the legal moves of the piece on from. It is empty when
// the square is empty, out of bounds, or holds a piece of the side not to move.
func (p *Position) LegalMoves(from Coordinate) []Move {
	if !from.WithinBounds() || p.Board.ColorAt(from) != p.Turn {
		return []Move{}
	}
	legal := []Move{}
	for _, m := range p.PseudoLegalMoves(from) {
		if p.leavesKingSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p *Position) AllLegalMoves() []Move {
	legal := []Move{}
	for c := range AllCoordinates() {
		if p.Board.ColorAt(c) == p.Turn {
			legal = append(legal, p.LegalMoves(c)...)
		}
	}
	return legal
}

func (p *Position) hasLegalMove() bool {
	for c := range AllCoordinates() {
		if p.Board.ColorAt(c) != p.Turn {
			continue
		}
		for _, m := range p.PseudoLegalMoves(c) {
			if p.leavesKingSafe(m) {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe plays m on a copy of p and reports whether the mover's king
// is unattacked afterwards.
func (p *Position) leavesKingSafe(m Move) bool {
	mover := p.Board.ColorAt(m.From)
	sim := *p
	sim.apply(m)
	king, ok := sim.Board.KingSquare(mover)
	if !ok {
		return true
	}
	return !sim.Board.IsAttacked(king, mover.Opposite())
}

// kingSafeOn reports whether the king on from would be unattacked standing on
// to, with the rest of the board unchanged.
func (p *Position) kingSafeOn(from, to Coordinate) bool {
	king := p.Board.PieceAt(from)
	sim := *p
	sim.Board.Remove(from)
	sim.Board.Place(to, king)
	return !sim.Board.IsAttacked(to, king.Color.Opposite())
}
