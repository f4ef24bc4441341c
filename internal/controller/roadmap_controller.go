package controller

import (
	"roadmap-be/internal/dto"
	"roadmap-be/internal/pkg/serverutils"
	"roadmap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DeleteTopic(ctx *fiber.Ctx) error
	ShowSubtopic(ctx *fiber.Ctx) error
	DeleteSubtopic(ctx *fiber.Ctx) error
}

type roadmapController struct {
	service service.IRoadmapService
	auth    fiber.Handler
}

func NewRoadmapController(service service.IRoadmapService, auth fiber.Handler) IRoadmapController {
	return &roadmapController{service: service, auth: auth}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	r.Get("/roadmaps", c.GetAll)
	r.Post("/roadmaps", c.auth, c.Create)
	r.Get("/roadmaps/:id", c.Show)
	r.Delete("/roadmaps/:id", c.auth, c.Delete)

	r.Delete("/topics/:id", c.auth, c.DeleteTopic)

	r.Get("/subtopics/:id", c.ShowSubtopic)
	r.Delete("/subtopics/:id", c.auth, c.DeleteSubtopic)
}

func (c *roadmapController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRoadmapRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *roadmapController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext(), ctx.Query("interviewer"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *roadmapController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "roadmap")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *roadmapController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "roadmap")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *roadmapController) DeleteTopic(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "topic")
	if err != nil {
		return err
	}

	if err := c.service.DeleteTopic(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *roadmapController) ShowSubtopic(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "subtopic")
	if err != nil {
		return err
	}

	res, err := c.service.ShowSubtopic(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *roadmapController) DeleteSubtopic(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "subtopic")
	if err != nil {
		return err
	}

	if err := c.service.DeleteSubtopic(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
