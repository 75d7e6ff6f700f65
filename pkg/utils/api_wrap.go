package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/chatflow"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Chat session not found or expired")
	case errors.Is(err, ErrExcursionNotFound):
		RespondError(c, http.StatusNotFound, "Excursion not found")
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrChatNotCompleted):
		RespondError(c, http.StatusConflict, "Complete the chat before accessing the dashboard")
	case errors.Is(err, ErrUnsupportedFormat):
		RespondError(c, http.StatusBadRequest, "Unsupported export format, use csv or xlsx")
	case errors.Is(err, chatflow.ErrBotTyping):
		RespondError(c, http.StatusConflict, "The assistant is still typing, retry shortly")
	case errors.Is(err, chatflow.ErrFlowCompleted):
		RespondError(c, http.StatusConflict, "The chat flow is already completed")
	case errors.Is(err, chatflow.ErrAnswerRequired),
		errors.Is(err, chatflow.ErrWrongAnswerKind),
		errors.Is(err, chatflow.ErrInvalidDateRange),
		errors.Is(err, chatflow.ErrInvalidGroupSize),
		errors.Is(err, chatflow.ErrRunnerCountExceedsGroup),
		errors.Is(err, chatflow.ErrUnknownCity),
		errors.Is(err, chatflow.ErrUnknownActivity),
		errors.Is(err, chatflow.ErrUnknownBudget),
		errors.Is(err, chatflow.ErrPreferencesIncomplete):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
