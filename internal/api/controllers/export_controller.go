package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ExportController struct {
	chatService   services.ChatServiceInterface
	exportService services.ExportServiceInterface
}

func NewExportController(
	chatService services.ChatServiceInterface,
	exportService services.ExportServiceInterface,
) *ExportController {
	return &ExportController{
		chatService:   chatService,
		exportService: exportService,
	}
}

// CreateExport godoc
// @Summary Download the trip summary as a spreadsheet
// @Description Streams a csv or xlsx file; authenticated requests are recorded
// @Tags exports
// @Accept json
// @Produce application/octet-stream
// @Param request body request_models.CreateExportRequest true "Session and format"
// @Success 200 {file} binary
// @Router /api/v1/exports [post]
func (ec *ExportController) CreateExport(c *gin.Context) {
	var req request_models.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	prefs, err := ec.chatService.Snapshot(req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	file, err := ec.exportService.ExportPreferences(c.Request.Context(), prefs, req.Format, exportUserFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if file.Warning != "" {
		c.Header("X-Export-Warning", file.Warning)
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// ListExports godoc
// @Summary List all recorded exports
// @Description Admin view over every persisted export record, paginated
// @Tags exports
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Records per page"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/exports [get]
func (ec *ExportController) ListExports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	records, err := ec.exportService.ListExports(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, records, "")
}

// ListMyExports godoc
// @Summary List the authenticated traveler's export history
// @Tags exports
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/exports [get]
func (ec *ExportController) ListMyExports(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := ec.exportService.ListExportsByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, records, "")
}

// exportUserFromContext builds the requester identity from JWT claims set by
// the optional auth middleware. Anonymous requests yield a zero ID.
func exportUserFromContext(c *gin.Context) services.ExportUser {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return services.ExportUser{}
	}
	return services.ExportUser{
		ID:    id,
		Name:  c.GetString("user_name"),
		Email: c.GetString("user_email"),
	}
}
