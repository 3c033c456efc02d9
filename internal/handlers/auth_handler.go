package handlers

import (
	"inspekta/internal/services"
	"inspekta/internal/utils"
	"inspekta/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var request validators.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err, "REGISTRATION_FAILED")
		return
	}

	utils.CreatedResponse(c, "User registered successfully", user)
}

// Login authenticates by email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err, "LOGIN_FAILED")
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// WalletLogin authenticates by wallet address
func (h *AuthHandler) WalletLogin(c *gin.Context) {
	var request validators.WalletLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, tokens, err := h.authService.WalletLogin(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err, "LOGIN_FAILED")
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var request validators.RefreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), request.RefreshToken)
	if err != nil {
		utils.UnauthorizedResponse(c)
		return
	}

	utils.SuccessResponse(c, "Token refreshed successfully", tokens)
}

// GetProfile returns the authenticated user
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "PROFILE_FETCH_FAILED")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", user)
}

// UpdateProfile edits the authenticated user's account
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.UserUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, &request)
	if err != nil {
		respondServiceError(c, err, "PROFILE_UPDATE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Profile updated successfully", user)
}

// ChangePassword updates the account password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.ChangePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, &request); err != nil {
		respondServiceError(c, err, "PASSWORD_CHANGE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Password changed successfully", nil)
}

// LinkGoogleAccount attaches a Google identity to the account
func (h *AuthHandler) LinkGoogleAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.GoogleLinkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.authService.LinkGoogleAccount(c.Request.Context(), userID, &request); err != nil {
		respondServiceError(c, err, "GOOGLE_LINK_FAILED")
		return
	}

	utils.SuccessResponse(c, "Google account linked successfully", nil)
}

// SetPIN stores the approval PIN for the account
func (h *AuthHandler) SetPIN(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.SetPINRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.authService.SetPIN(c.Request.Context(), userID, &request); err != nil {
		respondServiceError(c, err, "PIN_SET_FAILED")
		return
	}

	utils.SuccessResponse(c, "PIN set successfully", nil)
}

// ListUsers lists accounts for administrators, optionally filtered by role
func (h *AuthHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.authService.ListUsers(c.Request.Context(), c.Query("role"), params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Users retrieved successfully", users, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

// DeleteUser removes an account
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.authService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "USER_DELETE_FAILED")
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}

// VerifyPIN checks the approval PIN
func (h *AuthHandler) VerifyPIN(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.VerifyPINRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if validationErrors := validators.ValidateStruct(&request); validationErrors != nil {
		utils.ValidationErrorResponse(c, validationErrors.Details())
		return
	}

	if err := h.authService.VerifyPIN(c.Request.Context(), userID, request.PIN); err != nil {
		respondServiceError(c, err, "PIN_VERIFY_FAILED")
		return
	}

	utils.SuccessResponse(c, "PIN verified successfully", nil)
}
