package controller

import (
	"net/url"
	"strconv"

	"roadmap-be/internal/dto"
	"roadmap-be/internal/pkg/serverutils"
	"roadmap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatMessageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetBySubtopic(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SetLlmResponse(ctx *fiber.Ctx) error
}

type chatMessageController struct {
	service service.IChatMessageService
	auth    fiber.Handler
}

func NewChatMessageController(service service.IChatMessageService, auth fiber.Handler) IChatMessageController {
	return &chatMessageController{service: service, auth: auth}
}

func (c *chatMessageController) RegisterRoutes(r fiber.Router) {
	r.Get("/chat-messages", c.GetAll)
	r.Post("/chat-messages", c.auth, c.Create)
	r.Get("/chat-messages/:id", c.Show)
	r.Patch("/chat-messages/:id/llm-response", c.auth, c.SetLlmResponse)

	r.Get("/subtopics/:id/chat-messages", c.GetBySubtopic)
}

func (c *chatMessageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateChatMessageRequest
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

func (c *chatMessageController) GetAll(ctx *fiber.Ctx) error {
	var query dto.ListChatMessagesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	return c.list(ctx, query)
}

func (c *chatMessageController) GetBySubtopic(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "subtopic")
	if err != nil {
		return err
	}

	query := dto.ListChatMessagesQuery{
		Page:     ctx.Query("page"),
		Subtopic: strconv.FormatUint(uint64(id), 10),
	}
	return c.list(ctx, query)
}

func (c *chatMessageController) list(ctx *fiber.Ctx, query dto.ListChatMessagesQuery) error {
	page, err := c.service.List(ctx.UserContext(), query)
	if err != nil {
		return err
	}

	res := dto.PageResponse[dto.ChatMessageResponse]{
		Count:   page.Count,
		Results: page.Results,
	}
	if page.HasNext {
		res.Next = pageURL(ctx, page.Number+1)
	}
	if page.HasPrevious {
		res.Previous = pageURL(ctx, page.Number-1)
	}

	return ctx.JSON(res)
}

// pageURL rewrites the current absolute URL to point at another page. Page 1 drops the parameter.
func pageURL(ctx *fiber.Ctx, page int) *string {
	u, err := url.Parse(ctx.BaseURL() + ctx.OriginalURL())
	if err != nil {
		return nil
	}
	q := u.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	link := u.String()
	return &link
}

func (c *chatMessageController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "chat message")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatMessageController) SetLlmResponse(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "chat message")
	if err != nil {
		return err
	}

	var req dto.SetLlmResponseRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetLlmResponse(ctx.UserContext(), id, *req.LlmResponse)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
