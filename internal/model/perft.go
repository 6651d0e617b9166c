package model

// Perft counts the leaf nodes of the legal move tree depth plies deep.
func (p *Position) Perft(depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := p.AllLegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		next := *p
		next.commit(m)
		nodes += next.Perft(depth - 1)
	}
	return nodes
}
