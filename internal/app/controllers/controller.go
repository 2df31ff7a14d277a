package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// bindOptionalJSON decodes the request body into obj. An empty body leaves
// obj untouched, so every field reads as absent.
func bindOptionalJSON(ctx *gin.Context, obj interface{}) error {
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return nil
	}
	if err := ctx.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return nil
}

// courseIDParam reads the courseID path segment. A value that is not an
// integer cannot name a course.
func courseIDParam(ctx *gin.Context) (int64, error) {
	courseID, err := strconv.ParseInt(ctx.Param("courseID"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrCourseNotFound
	}
	return courseID, nil
}

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}
