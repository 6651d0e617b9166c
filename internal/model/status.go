package model

// Resolution names how a game ended. Draw claims are not resolutions; the
// engine only reports that one is available.
type Resolution string

const (
	Unresolved           Resolution = ""
	Checkmate            Resolution = "checkmate"
	Stalemate            Resolution = "stalemate"
	InsufficientMaterial Resolution = "insufficientMaterial"
)

// IsCheck reports whether the side to move has its king attacked.
func (p *Position) IsCheck() bool {
	king, ok := p.Board.KingSquare(p.Turn)
	if !ok {
		return false
	}
	return p.Board.IsAttacked(king, p.Turn.Opposite())
}

func (p *Position) IsCheckmate() bool {
	return p.IsCheck() && !p.hasLegalMove()
}

func (p *Position) IsStalemate() bool {
	return !p.IsCheck() && !p.hasLegalMove()
}

// IsInsufficientMaterial reports bare kings, a single minor piece, or one
// bishop per side with both bishops on the same square color.
func (p *Position) IsInsufficientMaterial() bool {
	var minors []Coordinate
	for c := range AllCoordinates() {
		switch p.Board.PieceAt(c).Type {
		case NoPieceType:
			continue
		case Pawn, Rook, Queen:
			return false
		}
		minors = append(minors, c)
	}
	if len(minors) < 4 {
		return true
	}
	if len(minors) > 4 {
		return false
	}

	bishops := map[Color][]Coordinate{}
	for _, c := range minors {
		if piece := p.Board.PieceAt(c); piece.Type == Bishop {
			bishops[piece.Color] = append(bishops[piece.Color], c)
		}
	}
	white, black := bishops[White], bishops[Black]
	return len(white) == 1 && len(black) == 1 && white[0].IsLight() == black[0].IsLight()
}

// Resolve reports whether the position ends the game.
func (p *Position) Resolve() Resolution {
	if !p.hasLegalMove() {
		if p.IsCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if p.IsInsufficientMaterial() {
		return InsufficientMaterial
	}
	return Unresolved
}

// Winner is the side that delivered mate, or NoColor.
func (p *Position) Winner() Color {
	if p.IsCheckmate() {
		return p.Turn.Opposite()
	}
	return NoColor
}
