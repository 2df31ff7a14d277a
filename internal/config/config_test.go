package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "enrollment.db", cfg.Database.Path)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Features.ApplyCourseUpdates)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8081"
  read_timeout: 3s
database:
  path: /tmp/courses.db
logging:
  level: debug
  format: text
features:
  apply_course_updates: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/tmp/courses.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Features.ApplyCourseUpdates)
	// untouched keys keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"8081\"\n")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_CONN_MAX_LIFETIME", "15m")
	t.Setenv("LOG_COMPRESS", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Logging.Compress)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"non numeric port", map[string]string{"SERVER_PORT": "http"}},
		{"bad duration", map[string]string{"SERVER_READ_TIMEOUT": "soon"}},
		{"empty sqlite path", map[string]string{"DB_PATH": " "}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not, a, map")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetSQLiteDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Path = "data/enrollment.db"
	dsn := cfg.GetSQLiteDSN()

	assert.Contains(t, dsn, "file:data/enrollment.db?")
	assert.Contains(t, dsn, "_pragma=foreign_keys(1)")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "enrollment"

	assert.Equal(t, "postgres://app:secret@db:5432/enrollment?sslmode=disable", cfg.GetPostgresConnectionString())
}
