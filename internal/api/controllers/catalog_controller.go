package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCities godoc
// @Summary List the destination cities
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/catalog/cities [get]
func (cc *CatalogController) ListCities(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalogService.ListCities(), "")
}

// ListActivities godoc
// @Summary List catalog activities
// @Description Optional filters: type (repeatable), max_price, group_size
// @Tags catalog
// @Produce json
// @Param type query []string false "Activity type tags"
// @Param max_price query number false "Maximum price per person"
// @Param group_size query int false "Group size the activity must host"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/catalog/activities [get]
func (cc *CatalogController) ListActivities(c *gin.Context) {
	types := c.QueryArray("type")

	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("max_price", "0"), 64)
	groupSize, _ := strconv.Atoi(c.DefaultQuery("group_size", "0"))

	utils.RespondSuccess(c, cc.catalogService.ListActivities(types, maxPrice, groupSize), "")
}

// GetActivity godoc
// @Summary Fetch one activity by id
// @Tags catalog
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/catalog/activities/{id} [get]
func (cc *CatalogController) GetActivity(c *gin.Context) {
	activity, err := cc.catalogService.GetActivity(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "")
}
