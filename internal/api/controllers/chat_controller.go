package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// StartSession godoc
// @Summary Open a new chat session
// @Description Creates an intake session and returns the greeting transcript
// @Tags chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/chat/sessions [post]
func (cc *ChatController) StartSession(c *gin.Context) {
	resp, err := cc.chatService.StartSession()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Session started")
}

// GetSession godoc
// @Summary Fetch the session transcript and state
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/chat/sessions/{id} [get]
func (cc *ChatController) GetSession(c *gin.Context) {
	resp, err := cc.chatService.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Validates the answer for the step in progress and advances the flow
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/chat/sessions/{id}/messages [post]
func (cc *ChatController) SubmitAnswer(c *gin.Context) {
	var req request_models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := cc.chatService.SubmitAnswer(c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Answer accepted")
}

// ToggleActivity godoc
// @Summary Toggle an activity in the traveler's selection
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.ToggleActivityRequest true "Activity to toggle"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/chat/sessions/{id}/activities/toggle [post]
func (cc *ChatController) ToggleActivity(c *gin.Context) {
	var req request_models.ToggleActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := cc.chatService.ToggleActivity(c.Param("id"), req.ActivityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// ResetSession godoc
// @Summary Restart the conversation from the greeting
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/chat/sessions/{id}/reset [post]
func (cc *ChatController) ResetSession(c *gin.Context) {
	resp, err := cc.chatService.ResetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Session reset")
}
