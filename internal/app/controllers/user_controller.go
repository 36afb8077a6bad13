package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers lists every user
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User "Users ordered by id"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Router /v1/users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// CreateUser adds a user
// @Summary Create a user
// @Description The password is stored as a bcrypt hash
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 200 {object} dto.StatusResponse "User data added successfully."
// @Failure 400 {object} dto.StatusResponse "Invalid request data"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 409 {object} dto.StatusResponse "Email already exists"
// @Router /v1/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.userService.CreateUser(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStatusResponse(true, "User data added successfully."))
}

// GetUserByID retrieves a user
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} models.User "User"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.SuccessResponse "User not found"
// @Router /v1/users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUserNotFound)
		return
	}

	user, err := c.userService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateUser partially updates a user
// @Summary Update a user
// @Description Only the fields present in the body are written; a new password is hashed
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse "User record updated successfully"
// @Failure 400 {object} dto.StatusResponse "Invalid request data"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.SuccessResponse "User not found"
// @Failure 409 {object} dto.StatusResponse "Email already exists"
// @Router /v1/users/{id} [put]
// @Router /v1/users/{id} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUserNotFound)
		return
	}

	if err := c.userService.EnsureUserExists(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.userService.UpdateUser(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(true, "User record updated successfully"))
}

// DeleteUser removes a user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 202 {object} dto.SuccessResponse "User record deleted"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.SuccessResponse "User not found"
// @Router /v1/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUserNotFound)
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.NewSuccessResponse(true, "User record deleted"))
}
