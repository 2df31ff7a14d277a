package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, MsgUserNotFound},
		{"wrapped course not found", fmt.Errorf("loading: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, MsgCourseNotFound},
		{"not enrolled", apperrors.ErrEnrollmentNotFound, http.StatusNotFound, MsgEnrollmentNotFound},
		{"duplicate user", fmt.Errorf("error creating user: %w", apperrors.ErrUserAlreadyExists), http.StatusInternalServerError, "User already exists"},
		{"duplicate course", apperrors.ErrCourseAlreadyExists, http.StatusInternalServerError, "Course already exists"},
		{"bad body", apperrors.NewBadRequestError("Invalid request body"), http.StatusInternalServerError, "Invalid request body"},
		{"store fault", errors.New("disk I/O error"), http.StatusInternalServerError, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Header().Get(RequestIDHeader))
}

func TestRecoveryRendersEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.Nop()), Recovery(zerolog.Nop()))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, w.Body.String())
}
