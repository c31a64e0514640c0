package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chipledger/internal/audit"
	"chipledger/internal/cache"
	"chipledger/internal/config"
	"chipledger/internal/db"
	"chipledger/internal/event"
	"chipledger/internal/jobs"
	"chipledger/internal/logger"
	"chipledger/internal/monitoring"
	"chipledger/internal/security"
	"chipledger/internal/service"
	"chipledger/internal/store"
	"chipledger/internal/ws"
)

type Server struct {
	app  *fiber.App
	port string
}

func NewServer() *Server {
	cfg := config.Load()
	logger.Init()
	monitoring.Init()

	database := db.Init(cfg.DBPath)
	games := store.New(database)
	auditService := audit.New(database)
	bus := event.NewBus()
	hub := ws.NewHub()

	if cfg.RedisAddr != "" {
		cache.Init(cfg.RedisAddr)
	}

	svc := service.New(games, auditService, bus)
	service.RegisterConsumers(bus, hub)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", security.CORS())
	service.RegisterRoutes(api, svc)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/:code", websocket.New(hub.Handler))

	admin := app.Group("/admin", security.AdminGuard())
	admin.Post("/purge", func(c *fiber.Ctx) error {
		n, err := svc.Purge(cfg.GameTTL)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Server error"})
		}
		return c.JSON(fiber.Map{"purged": n})
	})

	manager := jobs.New()
	manager.Register(jobs.NewSweeper(games, cfg.GameTTL))
	go manager.Start(context.Background())

	return &Server{app: app, port: cfg.Port}
}

func (s *Server) Start() error {
	return s.app.Listen(":" + s.port)
}
