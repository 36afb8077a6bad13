package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/auth"
)

// AuthController handles authentication related requests
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a user
// @Summary User login
// @Description Exchanges email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 401 {object} dto.StatusResponse "Invalid Username/Password"
// @Router /v1/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RefreshToken issues a new token for a current or recently expired one
// @Summary Refresh token
// @Description Exchanges a bearer token that is valid, or expired but still inside the refresh window, for a new token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TokenResponse "New token"
// @Failure 401 {object} dto.TokenErrorResponse "Token cannot be refreshed"
// @Router /v1/refresh [get]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	token, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.TokenErrorResponse{Error: middleware.MessageTokenNotFound})
		return
	}

	resp, err := c.authService.RefreshToken(ctx.Request.Context(), token)
	if err != nil {
		message := middleware.MessageTokenInvalid
		if apperrors.Is(err, apperrors.ErrRefreshExpired) {
			message = "Token is no longer refreshable"
		}
		ctx.JSON(http.StatusUnauthorized, dto.TokenErrorResponse{Error: message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CurrentUser returns the authenticated user
// @Summary Current user
// @Description Returns the record of the user the bearer token was issued for
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Authenticated user"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.SuccessResponse "User not found"
// @Router /user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenNotFound)
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
