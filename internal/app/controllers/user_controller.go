package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers lists every user
// @Summary List users
// @Description Retrieves all users with their enrolled courses
// @Tags users
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.UserResponse} "Users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/ [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserListResponse(users))
}

// CreateUser creates a user from the netID in the body
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest false "User information"
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse} "User created successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/ [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.CreateUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserResponse(user))
}

// GetUser retrieves one user
// @Summary Get user by netID
// @Tags users
// @Produce json
// @Param netID path string true "User netID"
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{netID}/ [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUserByNetID(ctx, ctx.Param("netID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserResponse(user))
}

// UpdateUser changes a user's netID when the body supplies one
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param netID path string true "User netID"
// @Param request body dto.UpdateUserRequest false "New netID"
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse} "User updated successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{netID}/ [post]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, ctx.Param("netID"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserResponse(user))
}

// DeleteUser deletes a user and releases its course seats
// @Summary Delete user
// @Tags users
// @Produce json
// @Param netID path string true "User netID"
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse} "Deleted user"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{netID}/ [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	user, err := c.userService.DeleteUser(ctx, ctx.Param("netID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserResponse(user))
}
