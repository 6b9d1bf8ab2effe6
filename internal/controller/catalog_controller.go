package controller

import (
	"tech-innovations-be/internal/dto"
	"tech-innovations-be/internal/pkg/serverutils"
	"tech-innovations-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Browse(ctx *fiber.Ctx) error
	ListByCategory(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/innovations")
	h.Get("", c.List)
	h.Get("/search", c.Browse)
	h.Get("/category/:category", c.ListByCategory)
	h.Get("/:id", c.Show)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res, err := c.catalogService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) Browse(ctx *fiber.Ctx) error {
	var req dto.BrowseRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.catalogService.Browse(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) ListByCategory(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListByCategory(ctx.Context(), ctx.Params("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	// A non-numeric id cannot match any record, so it is a plain 404.
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.NewNotFoundError("Innovation not found")
	}

	res, err := c.catalogService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFoundError("Innovation not found")
	}
	return ctx.JSON(res)
}
