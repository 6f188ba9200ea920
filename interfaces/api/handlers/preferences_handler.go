package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/domain/dto"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type PreferencesHandler struct {
	preferencesService services.PreferencesService
}

func NewPreferencesHandler(preferencesService services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesService: preferencesService,
	}
}

func (h *PreferencesHandler) GetPreferences(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	prefs, err := h.preferencesService.GetPreferences(c.UserContext(), userCtx.ID)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to get preferences", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.PreferencesToPreferencesResponse(prefs))
}

func (h *PreferencesHandler) UpdatePreferences(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	prefs, err := h.preferencesService.UpdatePreferences(ctx, userCtx.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.PreferencesToPreferencesResponse(prefs))
}
