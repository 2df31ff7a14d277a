package migrations

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	database, err := db.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func tableExists(t *testing.T, database *db.DB, name string) bool {
	t.Helper()
	var count int
	err := database.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestMigrate_CreatesSchema(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewMigrator(database).Migrate(ctx))

	for _, table := range []string{"user", "course", "association", "schema_migrations"} {
		assert.True(t, tableExists(t, database, table), "table %s should exist", table)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	migrator := NewMigrator(database)

	require.NoError(t, migrator.Migrate(ctx))
	require.NoError(t, migrator.Migrate(ctx))

	var versions int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&versions))
	assert.Equal(t, 1, versions)
}

func TestMigrateFromFS_AppliesInOrderAndRollsBackFailures(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	migrator := NewMigrator(database)

	fsys := fstest.MapFS{
		"m/002_second.sql": {Data: []byte("-- depends on first\nINSERT INTO widgets (name) VALUES ('a');")},
		"m/001_first.sql":  {Data: []byte("CREATE TABLE widgets (name TEXT);")},
		"m/README.md":      {Data: []byte("ignored")},
	}
	require.NoError(t, migrator.MigrateFromFS(ctx, fsys, "m"))

	var rows int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM widgets`).Scan(&rows))
	assert.Equal(t, 1, rows)

	broken := fstest.MapFS{
		"b/003_broken.sql": {Data: []byte("INSERT INTO widgets (name) VALUES ('b'); INSERT INTO missing_table VALUES (1);")},
	}
	assert.Error(t, migrator.MigrateFromFS(ctx, broken, "b"))

	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM widgets`).Scan(&rows))
	assert.Equal(t, 1, rows, "failed migration must not leave partial writes")

	applied, err := migrator.isMigrationApplied(ctx, "003")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("-- comment\nCREATE TABLE a (x INT);\n\n  ;CREATE TABLE b (y INT);")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE TABLE b (y INT)"}, stmts)
}
