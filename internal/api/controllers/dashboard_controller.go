package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DashboardController struct {
	chatService      services.ChatServiceInterface
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(
	chatService services.ChatServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *DashboardController {
	return &DashboardController{
		chatService:      chatService,
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Personalized trip summary for a completed session
// @Tags dashboard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/dashboard/{sessionId} [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	prefs, err := dc.chatService.Snapshot(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := dc.dashboardService.BuildDashboard(prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}
