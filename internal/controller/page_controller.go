package controller

import (
	"path/filepath"

	"tech-innovations-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(app fiber.Router)
	Detail(ctx *fiber.Ctx) error
	NotFound(ctx *fiber.Ctx) error
}

// pageController serves the static pages. The detail route resolves record
// existence before choosing a page; absence, a malformed id, and a store
// failure all serve the not-found page rather than the API error body.
type pageController struct {
	catalogService service.ICatalogService
	publicDir      string
}

func NewPageController(catalogService service.ICatalogService, publicDir string) IPageController {
	return &pageController{
		catalogService: catalogService,
		publicDir:      publicDir,
	}
}

func (c *pageController) RegisterRoutes(app fiber.Router) {
	app.Get("/innovations/:id", c.Detail)
}

func (c *pageController) Detail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return c.NotFound(ctx)
	}

	res, err := c.catalogService.Show(ctx.Context(), id)
	if err != nil || res == nil {
		return c.NotFound(ctx)
	}

	return ctx.SendFile(filepath.Join(c.publicDir, "detail.html"))
}

func (c *pageController) NotFound(ctx *fiber.Ctx) error {
	ctx.Status(fiber.StatusNotFound)
	return ctx.SendFile(filepath.Join(c.publicDir, "404.html"))
}
