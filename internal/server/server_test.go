package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerServesAndShutsDown(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yaml := fmt.Sprintf("server:\n  mode: test\ndatabase:\n  driver: sqlite\n  path: %s\nlogging:\n  level: error\n",
		filepath.Join(dir, "server.db"))
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o644))

	srv, err := NewServer(configPath)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/", nil))
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())

	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  driver: oracle\n"), 0o644))

	_, err := NewServer(configPath)
	assert.Error(t, err)
}
