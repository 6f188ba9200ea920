package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/domain/dto"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type ActivityHandler struct {
	activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	// limit ที่ parse ไม่ได้หรือไม่ส่งมา ใช้ default ฝั่ง service
	limit := c.QueryInt("limit", 0)

	activities, err := h.activityService.ListRecent(c.UserContext(), userCtx.ID, limit)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to list activities", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	out := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, dto.ActivityToActivityResponse(&activities[i]))
	}

	return utils.SuccessResponse(c, dto.ActivityListResponse{Activities: out})
}
