package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules/internal/middleware"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) NewGame(c *fiber.Ctx) error {
	log.Debugw("new game", "clientID", middleware.ClientID(c))
	return c.JSON(gc.gameService.NewGame())
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	var req service.LegalMovesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	moves, err := gc.gameService.LegalMoves(req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	result, err := gc.gameService.MakeMove(req)
	if err != nil {
		return serviceError(c, err)
	}
	if !result.Applied {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.JSON(result)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrBadRequest) {
		return badRequest(c, err)
	}
	log.Errorw("request failed", "path", c.Path(), "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal error",
	})
}
