package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// Envelope messages for lookup misses
const (
	MsgUserNotFound       = "User not found"
	MsgCourseNotFound     = "Course not found"
	MsgEnrollmentNotFound = "User is not enrolled in this course"
	MsgInternalError      = "Internal server error"
)

// HandleAPIError maps an error to its status code and failure envelope.
// Lookup misses are 404; every other failure is a server fault.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, apperrors.ErrCourseNotFound):
		abortWithError(c, http.StatusNotFound, MsgCourseNotFound)
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		abortWithError(c, http.StatusNotFound, MsgEnrollmentNotFound)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		logFault(c, err)
		abortWithError(c, http.StatusInternalServerError, "User already exists")
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		logFault(c, err)
		abortWithError(c, http.StatusInternalServerError, "Course already exists")
	case errors.Is(err, apperrors.ErrBadRequest):
		logFault(c, err)
		abortWithError(c, http.StatusInternalServerError, err.Error())
	default:
		logFault(c, err)
		abortWithError(c, http.StatusInternalServerError, MsgInternalError)
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

func logFault(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.Error().
		Err(err).
		Str("requestID", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")
}
