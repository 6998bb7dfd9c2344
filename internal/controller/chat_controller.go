package controller

import (
	"errors"
	"os"

	"mozi-streaming-be/internal/dto"
	"mozi-streaming-be/internal/pkg/serverutils"
	"mozi-streaming-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetSuggestions(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("send", serverutils.OptionalJwtMiddleware, c.SendMessage)
	h.Get("history", serverutils.JwtMiddleware, c.GetHistory)
	h.Delete("history", serverutils.JwtMiddleware, c.ClearHistory)
	h.Get("sessions", serverutils.JwtMiddleware, c.GetSessions)
	h.Get("suggestions", serverutils.JwtMiddleware, c.GetSuggestions)
	h.Get("admin/stats", serverutils.AdminJwtMiddleware, c.GetStats)
}

// currentUserId reads the optional-auth identity. Nil means guest.
func currentUserId(ctx *fiber.Ctx) *uuid.UUID {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Message is required"))
	}

	res, err := c.chatService.SendMessage(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Message is required"))
		}

		apology := service.ApologyFor(err)
		if os.Getenv("GO_ENV") != "production" {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponseWithDetail(500, apology, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, apology))
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat reply", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	sessionId := ctx.Query("sessionId")
	limit := ctx.QueryInt("limit", 50)

	res, err := c.chatService.GetHistory(ctx.Context(), userId, sessionId, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	sessionId := ctx.Query("sessionId")
	if err := c.chatService.ClearHistory(ctx.Context(), userId, sessionId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Chat history cleared", nil))
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.chatService.GetSessions(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat sessions", res))
}

func (c *chatController) GetSuggestions(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.chatService.GetSuggestions(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Quick suggestions", res))
}

func (c *chatController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat statistics", res))
}
