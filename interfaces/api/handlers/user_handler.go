package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/domain/dto"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userService.GetProfile(c.UserContext(), userCtx.ID)
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.UpdateProfile(ctx, userCtx.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// SearchUsers ค้นหา user สำหรับ share picker
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	query := c.Query("q")
	users, err := h.userService.SearchUsers(c.UserContext(), query, userCtx.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	results := make([]dto.UserSearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, dto.UserToSearchResult(u))
	}

	return utils.SuccessResponse(c, fiber.Map{"users": results})
}
