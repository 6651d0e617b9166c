package model

import "fmt"

// Move is a single ply. Promotion is set only for a pawn reaching the last
// rank; every other move leaves it empty.
type Move struct {
	From      Coordinate `json:"from"`
	To        Coordinate `json:"to"`
	Promotion PieceType  `json:"promotion,omitempty"`
}

func (m Move) String() string {
	if m.Promotion != NoPieceType {
		return fmt.Sprintf("%v-%v=%s", m.From, m.To, m.Promotion.letter())
	}
	return fmt.Sprintf("%v-%v", m.From, m.To)
}
