package main

import (
	"strings"

	"github.com/benbeisheim/chessrules/internal/config"
	"github.com/benbeisheim/chessrules/internal/controller"
	"github.com/benbeisheim/chessrules/internal/middleware"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	app := newApp(cfg)
	log.Infow("listening", "addr", cfg.Addr, "origins", cfg.AllowedOrigins)
	log.Fatal(app.Listen(cfg.Addr))
}

func newApp(cfg config.Config) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.AllowedOrigins, ","),
		AllowHeaders:  "Origin, Content-Type, Accept, " + middleware.ClientIDHeader,
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: middleware.ClientIDHeader,
	}))
	app.Use(middleware.EnsureClientID())

	// Initialize services
	gameService := service.NewGameService()

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController()

	// REST routes carry the game in each request
	gameRoutes := app.Group("/api/game")
	gameRoutes.Get("/new", gameController.NewGame)
	gameRoutes.Post("/moves", gameController.LegalMoves)
	gameRoutes.Post("/move", gameController.MakeMove)

	// One game per connection
	app.Get("/ws/game", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.WSBufferSize,
		WriteBufferSize: cfg.WSBufferSize,
		Origins:         cfg.AllowedOrigins,
	}))

	return app
}
