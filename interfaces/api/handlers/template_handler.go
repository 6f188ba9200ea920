package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type TemplateHandler struct {
	templateService services.TemplateService
}

func NewTemplateHandler(templateService services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	templates, err := h.templateService.ListTemplates(c.UserContext(), userCtx.ID)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to list templates", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	out := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, dto.TemplateToTemplateResponse(&templates[i]))
	}

	return utils.SuccessResponse(c, dto.TemplateListResponse{Templates: out})
}

func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	template, err := h.templateService.CreateTemplate(ctx, userCtx.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.TemplateToTemplateResponse(template))
}

func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid template id")
	}

	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	template, err := h.templateService.UpdateTemplate(ctx, id, userCtx.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return utils.NotFoundResponse(c, "Template not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.TemplateToTemplateResponse(template))
}

func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid template id")
	}

	if err := h.templateService.DeleteTemplate(c.UserContext(), id, userCtx.ID); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return utils.NotFoundResponse(c, "Template not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func (h *TemplateHandler) InstantiateTemplate(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid template id")
	}

	todo, err := h.templateService.InstantiateTemplate(c.UserContext(), id, userCtx.ID)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return utils.NotFoundResponse(c, "Template not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.TodoToTodoResponse(todo, time.Now()))
}
