package controller

import (
	"dept-tracker-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
	auth          fiber.Handler
}

func NewSearchController(searchService service.ISearchService, auth fiber.Handler) ISearchController {
	return &searchController{
		searchService: searchService,
		auth:          auth,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Use(c.auth)
	h.Get("", c.Search)
}

// Search answers with the envelope itself rather than the generic success
// wrapper so clients get query echo and scope alongside the result buckets.
func (c *searchController) Search(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")
	scope := ctx.Query("type", "")
	limit := ctx.QueryInt("limit", 0)

	res, err := c.searchService.Search(ctx.Context(), q, scope, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
