package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemquest/internal/models/request_models"
	"gemquest/internal/services"
	"gemquest/pkg/utils"
)

type UserController struct {
	userService   services.UserServiceInterface
	familyService services.FamilyServiceInterface
}

func NewUserController(userService services.UserServiceInterface, familyService services.FamilyServiceInterface) *UserController {
	return &UserController{
		userService:   userService,
		familyService: familyService,
	}
}

// Register godoc
// @Summary Register a new parent account
// @Description Create a parent account and return an access/refresh token pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /user [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Login to a parent account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /user/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true, "user": auth}, "Login successful")
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RefreshTokenRequest true "Refresh payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /user/refresh-token [post]
func (u *UserController) RefreshToken(c *gin.Context) {
	var req request_models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accessToken, err := u.userService.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"accessToken": accessToken}, "Token refreshed")
}

// Logout godoc
// @Summary Revoke a refresh token's session
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RefreshTokenRequest true "Refresh payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /user/logout [post]
func (u *UserController) Logout(c *gin.Context) {
	var req request_models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out")
}

// TokenConfig godoc
// @Summary Configure the reward goal and gift card amount
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.TokenConfigRequest true "Token config payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/token-config [put]
func (u *UserController) TokenConfig(c *gin.Context) {
	var req request_models.TokenConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	parent, err := u.familyService.UpdateTokenConfig(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, parent, "Token configuration updated")
}

// FamilySetup godoc
// @Summary Update parent credentials and add children
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.FamilySetupRequest true "Family setup payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/family-setup [put]
func (u *UserController) FamilySetup(c *gin.Context) {
	var req request_models.FamilySetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	family, err := u.familyService.FamilySetup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"family": family}, "Family setup complete")
}

// ValidatePin godoc
// @Summary Validate the parent-mode PIN
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ValidatePinRequest true "PIN payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/validate-pin [post]
func (u *UserController) ValidatePin(c *gin.Context) {
	var req request_models.ValidatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	isValid, err := u.userService.ValidatePin(c.Request.Context(), req.UserID, req.Pin)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"isValid": isValid}, "Pin validated")
}

// GetFamily godoc
// @Summary Fetch the parent and their children
// @Tags Users
// @Produce json
// @Param userId path string true "Parent ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/family/{userId} [get]
func (u *UserController) GetFamily(c *gin.Context) {
	userID := c.Param("userId")

	family, err := u.familyService.GetFamily(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"family": family}, "Family fetched successfully")
}

// UpdateChildGems godoc
// @Summary Apply a gem delta to a child's counter
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ChildGemsRequest true "Gem delta payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/child-gems [put]
func (u *UserController) UpdateChildGems(c *gin.Context) {
	var req request_models.ChildGemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	child, err := u.familyService.AddChildGems(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, child, "Child gems updated")
}
