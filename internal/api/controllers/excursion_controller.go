package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ExcursionController struct {
	excursionService services.ExcursionServiceInterface
}

func NewExcursionController(excursionService services.ExcursionServiceInterface) *ExcursionController {
	return &ExcursionController{excursionService: excursionService}
}

// ListExcursions godoc
// @Summary List admin-managed excursions
// @Tags admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/excursions [get]
func (ec *ExcursionController) ListExcursions(c *gin.Context) {
	resp, err := ec.excursionService.ListExcursions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// GetExcursion godoc
// @Summary Fetch one excursion
// @Tags admin
// @Produce json
// @Param id path string true "Excursion ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/excursions/{id} [get]
func (ec *ExcursionController) GetExcursion(c *gin.Context) {
	resp, err := ec.excursionService.GetExcursion(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// CreateExcursion godoc
// @Summary Create an excursion
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateExcursionRequest true "Excursion details"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/excursions [post]
func (ec *ExcursionController) CreateExcursion(c *gin.Context) {
	var req request_models.CreateExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := ec.excursionService.CreateExcursion(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Excursion created")
}

// UpdateExcursion godoc
// @Summary Update an excursion
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Excursion ID"
// @Param request body request_models.UpdateExcursionRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/excursions/{id} [put]
func (ec *ExcursionController) UpdateExcursion(c *gin.Context) {
	var req request_models.UpdateExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := ec.excursionService.UpdateExcursion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Excursion updated")
}

// DeleteExcursion godoc
// @Summary Delete an excursion
// @Tags admin
// @Produce json
// @Param id path string true "Excursion ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/excursions/{id} [delete]
func (ec *ExcursionController) DeleteExcursion(c *gin.Context) {
	if err := ec.excursionService.DeleteExcursion(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Excursion deleted")
}
