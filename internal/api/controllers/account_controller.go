package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// Register godoc
// @Summary Create a traveler account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account details"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/accounts/register [post]
func (ac *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := ac.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Account created")
}

// Login godoc
// @Summary Exchange credentials for a JWT
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/accounts/login [post]
func (ac *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := ac.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Login successful")
}

// Me godoc
// @Summary Fetch the authenticated account
// @Tags accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/accounts/me [get]
func (ac *AccountController) Me(c *gin.Context) {
	resp, err := ac.accountService.GetAccount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}
