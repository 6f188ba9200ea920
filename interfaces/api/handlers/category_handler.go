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

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	categories, err := h.categoryService.ListCategories(c.UserContext(), userCtx.ID)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to list categories", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{Categories: categories})
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.CreateCategory(ctx, userCtx.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category, 0))
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.UpdateCategory(ctx, id, userCtx.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category, 0))
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category id")
	}

	if err := h.categoryService.DeleteCategory(c.UserContext(), id, userCtx.ID); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
