package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists every course
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/ [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewCourseListResponse(courses))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course; enrolled defaults to 0 and courseID is assigned when omitted
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 200 {object} dto.SuccessResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/ [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewCourseResponse(course))
}

// GetCourse retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseID}/ [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, err := courseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewCourseResponse(course))
}

// UpdateCourse commits the course
// @Summary Update course
// @Description Body fields are read but only applied when course updates are enabled
// @Tags courses
// @Accept json
// @Produce json
// @Param courseID path int true "Course ID"
// @Param request body dto.UpdateCourseRequest false "Course fields"
// @Success 200 {object} dto.SuccessResponse{data=dto.CourseResponse} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseID}/ [post]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	courseID, err := courseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewCourseResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete course
// @Tags courses
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.CourseResponse} "Deleted course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseID}/ [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, err := courseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.DeleteCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.NewCourseResponse(course))
}
