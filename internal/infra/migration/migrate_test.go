//go:build unit

package migration_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"beer-service/internal/infra/migration"
	"beer-service/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_DuplicateMigrationVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"000001_create_beer.up.sql":     {Data: []byte("SELECT 1;")},
		"000001_create_customer.up.sql": {Data: []byte("SELECT 1;")},
	}

	m, err := migration.New(fsys, "pgx5://localhost:5432/beers", discardLogger())

	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "failed to open migration source")

	var dup source.ErrDuplicateMigration
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, uint(1), dup.Version)
}

func TestNew_UnknownDatabaseScheme(t *testing.T) {
	fsys := fstest.MapFS{
		"000001_create_beer.up.sql":   {Data: []byte("SELECT 1;")},
		"000001_create_beer.down.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := migration.New(fsys, "mysql5://localhost/beers", discardLogger())

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to create migrate instance: "), err.Error())
	assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "internal/infra/migration/migrate.go")
}
