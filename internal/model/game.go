package model

import (
	"fmt"
	"slices"
)

// fiftyMoveLimit is fifty moves by each side, counted in plies.
const fiftyMoveLimit = 100

// GameMeta is the bookkeeping that spans positions.
type GameMeta struct {
	// History holds the positions since the last pawn move or capture,
	// oldest first, excluding the current one.
	History       []Position `json:"history"`
	HalfMoveClock int        `json:"halfMoveClock"`
	DrawClaimable bool       `json:"drawClaimable"`
}

// Game is a position plus its history. A Game is not modified once it has
// been handed out: Play and AttemptMove return a new Game and leave the
// receiver as it was.
type Game struct {
	Position
	Meta GameMeta

	prev     *Game
	lastMove *Move
}

func NewGame() *Game {
	return FromPosition(StartingPosition())
}

// FromPosition starts a game from an arbitrary arrangement with empty history.
func FromPosition(pos Position) *Game {
	return &Game{Position: pos}
}

// Play commits m if it is legal. On failure the receiver is returned
// unchanged together with the reason.
func (g *Game) Play(m Move) (*Game, error) {
	if err := g.CheckMove(m); err != nil {
		return g, fmt.Errorf("move %v: %w", m, err)
	}

	pre := g.Position
	next := g.clone()
	next.prev = g
	next.lastMove = &m
	next.commit(m)
	next.record(&pre, m)
	return next, nil
}

// AttemptMove is Play without the reason.
func (g *Game) AttemptMove(m Move) (*Game, bool) {
	next, err := g.Play(m)
	return next, err == nil
}

func (g *Game) clone() *Game {
	c := *g
	c.Meta.History = slices.Clone(g.Meta.History)
	return &c
}

// record updates the clock and repetition history after m moved pre to
// g.Position.
func (g *Game) record(pre *Position, m Move) {
	if pre.Board.PieceAt(m.From).Type == Pawn || pre.isCapture(m) {
		g.Meta.HalfMoveClock = 0
		g.Meta.History = nil
	} else {
		g.Meta.HalfMoveClock++
		g.Meta.History = append(g.Meta.History, *pre)
	}
	g.Meta.DrawClaimable = g.Meta.HalfMoveClock >= fiftyMoveLimit || g.Repetitions() >= 3
}

// Repetitions counts occurrences of the current position, itself included.
func (g *Game) Repetitions() int {
	n := 1
	for _, pos := range g.Meta.History {
		if pos == g.Position {
			n++
		}
	}
	return n
}

func (g *Game) IsDrawClaimable() bool {
	return g.Meta.DrawClaimable
}

// Undo returns the game as it was before the last committed move.
func (g *Game) Undo() (*Game, error) {
	if g.prev == nil {
		return g, ErrNothingToUndo
	}
	return g.prev, nil
}

func (g *Game) LastMove() (Move, bool) {
	if g.lastMove == nil {
		return Move{}, false
	}
	return *g.lastMove, true
}

// Snapshot is a comparable copy of the state that decides future play,
// minus the repetition history.
type Snapshot struct {
	Position      Position `json:"position"`
	HalfMoveClock int      `json:"halfMoveClock"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{Position: g.Position, HalfMoveClock: g.Meta.HalfMoveClock}
}

// Restore rebuilds a game from a snapshot and the positions played since
// the last pawn move or capture. Undo is not available on the result.
func Restore(s Snapshot, history []Position) (*Game, error) {
	if err := s.Position.Validate(); err != nil {
		return nil, err
	}
	if s.HalfMoveClock < 0 {
		return nil, fmt.Errorf("%w: negative half-move clock", ErrInvalidPosition)
	}
	g := FromPosition(s.Position)
	g.Meta.HalfMoveClock = s.HalfMoveClock
	g.Meta.History = slices.Clone(history)
	g.Meta.DrawClaimable = g.Meta.HalfMoveClock >= fiftyMoveLimit || g.Repetitions() >= 3
	return g, nil
}
