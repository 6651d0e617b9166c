package model

type generator func(p *Position, from Coordinate, piece Piece) []Move

var generators = map[PieceType]generator{
	Pawn:   (*Position).pawnMoves,
	Knight: (*Position).knightMoves,
	Bishop: (*Position).bishopMoves,
	Rook:   (*Position).rookMoves,
	Queen:  (*Position).queenMoves,
	King:   (*Position).kingMoves,
}

// PseudoLegalMoves returns the moves the piece on from can make by its
// movement pattern, without checking whether its own king is left attacked.
func (p *Position) PseudoLegalMoves(from Coordinate) []Move {
	if !from.WithinBounds() {
		return nil
	}
	piece := p.Board.PieceAt(from)
	gen, ok := generators[piece.Type]
	if !ok {
		return nil
	}
	return gen(p, from, piece)
}

// slide walks each direction, stopping before an own piece and on an enemy one.
func (p *Position) slide(from Coordinate, piece Piece, dirs []direction) []Move {
	moves := []Move{}
	for _, d := range dirs {
		for steps := 1; steps <= 7; steps++ {
			to := from.step(d, steps)
			if !to.WithinBounds() {
				break
			}
			occupant := p.Board.PieceAt(to)
			if occupant.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				continue
			}
			if occupant.Color != piece.Color {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

func (p *Position) jump(from Coordinate, piece Piece, targets [8]Coordinate) []Move {
	moves := []Move{}
	for _, to := range targets {
		if to.WithinBounds() && p.Board.ColorAt(to) != piece.Color {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (p *Position) bishopMoves(from Coordinate, piece Piece) []Move {
	return p.slide(from, piece, diagonalDirs)
}

func (p *Position) rookMoves(from Coordinate, piece Piece) []Move {
	return p.slide(from, piece, orthogonalDirs)
}

func (p *Position) queenMoves(from Coordinate, piece Piece) []Move {
	return append(p.rookMoves(from, piece), p.bishopMoves(from, piece)...)
}

func (p *Position) knightMoves(from Coordinate, piece Piece) []Move {
	return p.jump(from, piece, from.KnightOffsets())
}

func (p *Position) kingMoves(from Coordinate, piece Piece) []Move {
	moves := p.jump(from, piece, from.KingOffsets())
	for _, kingside := range [2]bool{true, false} {
		if p.canCastle(from, piece, kingside) {
			moves = append(moves, Move{From: from, To: from.Right(castleStep(kingside))})
		}
	}
	return moves
}

func castleStep(kingside bool) int {
	if kingside {
		return 2
	}
	return -2
}

func (p *Position) canCastle(from Coordinate, king Piece, kingside bool) bool {
	if !p.Castling.Has(king.Color, kingside) {
		return false
	}
	if from != (Coordinate{Row: king.Color.backRank(), Col: 4}) {
		return false
	}
	corner := rookCorner(king.Color, kingside)
	if !p.Board.PieceAt(corner).Is(Rook, king.Color) {
		return false
	}
	opponent := king.Color.Opposite()
	if p.Board.IsAttacked(from, opponent) {
		return false
	}

	dir := 1
	if !kingside {
		dir = -1
	}
	for c := from.Right(dir); c != corner; c = c.Right(dir) {
		if !p.Board.IsEmpty(c) {
			return false
		}
	}
	for steps := 1; steps <= 2; steps++ {
		if !p.kingSafeOn(from, from.Right(dir*steps)) {
			return false
		}
	}
	return true
}

func (p *Position) pawnMoves(from Coordinate, piece Piece) []Move {
	forward := piece.Color.forward()
	moves := []Move{}

	one := from.Up(forward)
	if one.WithinBounds() && p.Board.IsEmpty(one) {
		moves = append(moves, Move{From: from, To: one})
		two := from.Up(2 * forward)
		if from.Row == piece.Color.backRank()+forward && p.Board.IsEmpty(two) {
			moves = append(moves, Move{From: from, To: two})
		}
	}

	for _, to := range [2]Coordinate{one.Left(1), one.Right(1)} {
		if !to.WithinBounds() {
			continue
		}
		if p.Board.ColorAt(to) == piece.Color.Opposite() || (p.HasEnPassant() && to == p.EnPassant) {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	lastRank := piece.Color.Opposite().backRank()
	expanded := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.To.Row != lastRank {
			expanded = append(expanded, m)
			continue
		}
		for _, t := range PromotionTypes {
			expanded = append(expanded, Move{From: m.From, To: m.To, Promotion: t})
		}
	}
	return expanded
}
