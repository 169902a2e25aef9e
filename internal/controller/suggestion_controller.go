package controller

import (
	"notegraph-be/internal/dto"
	"notegraph-be/internal/pkg/serverutils"
	"notegraph-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Replace(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionController(suggestionService service.ISuggestionService) ISuggestionController {
	return &suggestionController{
		suggestionService: suggestionService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes/:id/suggestions")
	h.Get("", c.List)
	h.Put("", c.Replace)
}

func (c *suggestionController) List(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.suggestionService.List(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *suggestionController) Replace(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.SaveSuggestionsRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.NoteId = id

	res, err := c.suggestionService.Replace(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
