package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/app/migrations"
	appRepos "github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
)

const fixtureYAML = `
users: [abc123, xyz789]
courses:
  - {courseID: 1, courseName: CS101, capacity: 30}
  - {courseID: 2, courseName: CS201, capacity: 20}
enrollments:
  - {netID: abc123, courseID: 1}
  - {netID: xyz789, courseID: 1}
  - {netID: xyz789, courseID: 2}
`

func setup(t *testing.T) (*appRepos.Repositories, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(dir, "seed.db")

	database, err := db.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, migrations.NewMigrator(database).Migrate(context.Background()))

	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))
	return appRepos.NewRepositories(database), path
}

func TestCreateDefaultData_IsRepeatable(t *testing.T) {
	repos, path := setup(t)
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, repos, path, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, repos, path, zerolog.Nop()))

	users, err := repos.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Len(t, users[1].Courses, 2)

	course, err := repos.CourseRepository.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), course.Enrolled)
}

func TestCreateDefaultData_NoFile(t *testing.T) {
	repos, _ := setup(t)
	assert.NoError(t, CreateDefaultData(context.Background(), repos, "", zerolog.Nop()))
	assert.Error(t, CreateDefaultData(context.Background(), repos, "missing.yaml", zerolog.Nop()))
}

func TestCreateDefaultData_ReportsBadEnrollments(t *testing.T) {
	repos, dir := setup(t)
	path := filepath.Join(filepath.Dir(dir), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enrollments: [{netID: ghost, courseID: 9}]"), 0o644))

	err := CreateDefaultData(context.Background(), repos, path, zerolog.Nop())
	assert.Error(t, err)
}
