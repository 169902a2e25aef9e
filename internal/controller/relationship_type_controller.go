package controller

import (
	"notegraph-be/internal/dto"
	"notegraph-be/internal/pkg/serverutils"
	"notegraph-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRelationshipTypeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type relationshipTypeController struct {
	relationshipTypeService service.IRelationshipTypeService
}

func NewRelationshipTypeController(relationshipTypeService service.IRelationshipTypeService) IRelationshipTypeController {
	return &relationshipTypeController{
		relationshipTypeService: relationshipTypeService,
	}
}

func (c *relationshipTypeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/relationship_types")
	h.Get("", c.List)
	h.Post("", c.Create)
}

func (c *relationshipTypeController) List(ctx *fiber.Ctx) error {
	res, err := c.relationshipTypeService.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *relationshipTypeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRelationshipTypeRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.relationshipTypeService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}
