package server

import (
	"log"

	"tech-innovations-be/internal/bootstrap"
	"tech-innovations-be/internal/config"
	"tech-innovations-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")
	c.CatalogController.RegisterRoutes(api)

	// Detail pages resolve before the static handler so existence decides
	// which page is served.
	c.PageController.RegisterRoutes(app)

	app.Static("/", cfg.App.PublicDir, fiber.Static{
		Index: "index.html",
	})

	// Anything still unmatched serves the not-found page.
	app.Use(c.PageController.NotFound)
}
