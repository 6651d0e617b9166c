package service

import (
	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

// Session owns the single game played over one websocket connection. It is
// used from the connection's read loop only and is not safe for concurrent
// use.
type Session struct {
	ID   string
	game *model.Game
}

func NewSession(id string) *Session {
	log.Debugw("session started", "session", id)
	return &Session{ID: id, game: model.NewGame()}
}

func (s *Session) State() GameState {
	return NewGameState(s.game)
}

// Move plays m, leaving the game unchanged if it is illegal.
func (s *Session) Move(m model.Move) (GameState, error) {
	next, err := s.game.Play(m)
	if err != nil {
		log.Debugw("move rejected", "session", s.ID, "move", m, "err", err)
		return s.State(), err
	}
	s.game = next
	log.Debugw("move played", "session", s.ID, "move", m)
	return s.State(), nil
}

func (s *Session) Undo() (GameState, error) {
	prev, err := s.game.Undo()
	if err != nil {
		return s.State(), err
	}
	s.game = prev
	return s.State(), nil
}

func (s *Session) Reset() GameState {
	s.game = model.NewGame()
	return s.State()
}

// LegalMoves lists the moves from one square, or all of them when from is nil.
func (s *Session) LegalMoves(from *model.Coordinate) []model.Move {
	if from == nil {
		return s.game.AllLegalMoves()
	}
	return s.game.LegalMoves(*from)
}
