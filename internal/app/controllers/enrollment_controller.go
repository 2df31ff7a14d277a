package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// EnrollmentController handles joining and dropping courses
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// JoinCourse enrolls the user in the course named by the body
// @Summary Join course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param netID path string true "User netID"
// @Param request body dto.EnrollmentRequest true "Course to join"
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse} "Updated user"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Router /users/{netID}/course/ [post]
func (c *EnrollmentController) JoinCourse(ctx *gin.Context) {
	req, err := c.bindEnrollment(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.enrollmentService.JoinCourse(ctx, ctx.Param("netID"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserResponse(user))
}

// DropCourse removes the user from the course named by the body
// @Summary Drop course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param netID path string true "User netID"
// @Param request body dto.EnrollmentRequest true "Course to drop"
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse} "Updated user"
// @Failure 404 {object} dto.ErrorResponse "User or course not found, or user not enrolled"
// @Router /users/{netID}/course/ [delete]
func (c *EnrollmentController) DropCourse(ctx *gin.Context) {
	req, err := c.bindEnrollment(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.enrollmentService.DropCourse(ctx, ctx.Param("netID"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewUserResponse(user))
}

// bindEnrollment decodes the body. An unknown user is reported ahead of a
// malformed body.
func (c *EnrollmentController) bindEnrollment(ctx *gin.Context) (*dto.EnrollmentRequest, error) {
	var req dto.EnrollmentRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		if userErr := c.enrollmentService.RequireUser(ctx, ctx.Param("netID")); userErr != nil {
			return nil, userErr
		}
		return nil, err
	}
	return &req, nil
}
