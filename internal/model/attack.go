package model

// IsAttacked reports whether any piece of color by threatens target.
// It looks outward from target instead of generating the attacker's moves,
// so it never depends on move generation.
func (b *Board) IsAttacked(target Coordinate, by Color) bool {
	if b.rayAttacked(target, by, orthogonalDirs, Rook) || b.rayAttacked(target, by, diagonalDirs, Bishop) {
		return true
	}
	for _, c := range target.KnightOffsets() {
		if c.WithinBounds() && b.PieceAt(c).Is(Knight, by) {
			return true
		}
	}
	for _, c := range target.KingOffsets() {
		if c.WithinBounds() && b.PieceAt(c).Is(King, by) {
			return true
		}
	}
	// A pawn of color by captures one row forward from its own square, so it
	// stands one row behind target from by's point of view.
	behind := target.Up(-by.forward())
	for _, c := range [2]Coordinate{behind.Left(1), behind.Right(1)} {
		if c.WithinBounds() && b.PieceAt(c).Is(Pawn, by) {
			return true
		}
	}
	return false
}

// rayAttacked walks each direction until the first occupied square and
// reports a hit on slider or a queen of color by.
func (b *Board) rayAttacked(target Coordinate, by Color, dirs []direction, slider PieceType) bool {
	for _, d := range dirs {
		for steps := 1; steps <= 7; steps++ {
			c := target.step(d, steps)
			if !c.WithinBounds() {
				break
			}
			p := b.PieceAt(c)
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Type == slider || p.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}
