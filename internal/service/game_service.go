package service

import (
	"errors"
	"fmt"
	"slices"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

var ErrBadRequest = errors.New("bad request")

// GameState is what clients render from. Snapshot and History are enough to
// resume the game on a later request.
type GameState struct {
	Snapshot             model.Snapshot   `json:"snapshot"`
	History              []model.Position `json:"history"`
	ToMove               model.Color      `json:"toMove"`
	IsCheck              bool             `json:"isCheck"`
	Resolve              model.Resolution `json:"resolve,omitempty"`
	Winner               model.Color      `json:"winner,omitempty"`
	DrawClaimable        bool             `json:"drawClaimable"`
	InsufficientMaterial bool             `json:"insufficientMaterial"`
	LastMove             *model.Move      `json:"lastMove"`
	LegalMoves           []model.Move     `json:"legalMoves"`
}

func NewGameState(g *model.Game) GameState {
	state := GameState{
		Snapshot:             g.Snapshot(),
		History:              slices.Clone(g.Meta.History),
		ToMove:               g.Turn,
		IsCheck:              g.IsCheck(),
		Resolve:              g.Resolve(),
		Winner:               g.Winner(),
		DrawClaimable:        g.IsDrawClaimable(),
		InsufficientMaterial: g.IsInsufficientMaterial(),
		LegalMoves:           g.AllLegalMoves(),
	}
	if state.History == nil {
		state.History = []model.Position{}
	}
	if m, ok := g.LastMove(); ok {
		state.LastMove = &m
	}
	return state
}

// SavedGame is the part of a GameState a client sends back.
type SavedGame struct {
	Snapshot model.Snapshot   `json:"snapshot"`
	History  []model.Position `json:"history"`
}

type LegalMovesRequest struct {
	SavedGame
	From *model.Coordinate `json:"from"`
}

type MoveRequest struct {
	SavedGame
	Move model.Move `json:"move"`
}

type MoveResult struct {
	Applied bool      `json:"applied"`
	Reason  string    `json:"reason,omitempty"`
	State   GameState `json:"state"`
}

// GameService runs single moves against a game the caller carries between
// requests. It keeps no state of its own.
type GameService struct{}

func NewGameService() *GameService {
	return &GameService{}
}

func (gs *GameService) NewGame() GameState {
	return NewGameState(model.NewGame())
}

func (gs *GameService) restore(saved SavedGame) (*model.Game, error) {
	for _, pos := range saved.History {
		if err := pos.Validate(); err != nil {
			return nil, fmt.Errorf("%w: history: %w", ErrBadRequest, err)
		}
	}
	g, err := model.Restore(saved.Snapshot, saved.History)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return g, nil
}

func (gs *GameService) LegalMoves(req LegalMovesRequest) ([]model.Move, error) {
	g, err := gs.restore(req.SavedGame)
	if err != nil {
		return nil, err
	}
	if req.From == nil {
		return g.AllLegalMoves(), nil
	}
	return g.LegalMoves(*req.From), nil
}

// MakeMove plays req.Move. An illegal move is not an error: the result
// reports Applied false with the unchanged state.
func (gs *GameService) MakeMove(req MoveRequest) (MoveResult, error) {
	g, err := gs.restore(req.SavedGame)
	if err != nil {
		return MoveResult{}, err
	}

	next, err := g.Play(req.Move)
	if err != nil {
		log.Debugw("move rejected", "move", req.Move, "err", err)
		return MoveResult{Applied: false, Reason: err.Error(), State: NewGameState(g)}, nil
	}
	return MoveResult{Applied: true, State: NewGameState(next)}, nil
}
