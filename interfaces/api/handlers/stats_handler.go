package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.statsService.GetStats(c.UserContext(), userCtx.ID)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to compute stats", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, stats)
}
