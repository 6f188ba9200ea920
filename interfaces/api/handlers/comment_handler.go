package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	todoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	comments, err := h.commentService.ListComments(c.UserContext(), todoID, userCtx.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotTodoMember) {
			return utils.ForbiddenResponse(c, "You do not have access to this todo")
		}
		return utils.NotFoundResponse(c, "Todo not found")
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.CommentToCommentResponse(&comments[i]))
	}

	return utils.SuccessResponse(c, dto.CommentListResponse{Comments: out})
}

func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	todoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	comment, err := h.commentService.AddComment(ctx, todoID, userCtx.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotTodoMember) {
			return utils.ForbiddenResponse(c, "You do not have access to this todo")
		}
		return utils.NotFoundResponse(c, "Todo not found")
	}

	return utils.CreatedResponse(c, dto.CommentToCommentResponse(comment))
}
