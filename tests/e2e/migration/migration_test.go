//go:build e2e

package migration_test

import (
	"log/slog"
	"testing"

	"beer-service/internal/infra/migration"
	"beer-service/migrations"
	"beer-service/tests/common/dbtest"
	"beer-service/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MigrationSuite struct {
	e2e.SharedSuite
}

func TestMigrationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MigrationSuite))
}

func (s *MigrationSuite) tableExists(name string) bool {
	var exists bool
	err := s.DB.QueryRow(s.T().Context(), "SELECT to_regclass($1) IS NOT NULL", "public."+name).Scan(&exists)
	require.NoError(s.T(), err)
	return exists
}

func (s *MigrationSuite) TestDownAndUp() {
	t := s.T()
	m, err := migration.New(migrations.FS, s.Config.DB.BuildMigrateURL(), slog.Default())
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Close()) }()

	version, dirty, err := m.Version()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
	require.False(t, dirty)

	// already applied by the suite setup
	require.NoError(t, m.Up())

	require.NoError(t, m.Down())
	require.False(t, s.tableExists("beer"))
	require.False(t, s.tableExists("customer"))
	version, _, err = m.Version()
	require.NoError(t, err)
	require.Zero(t, version)

	require.NoError(t, m.Up())
	require.True(t, s.tableExists("beer"))
	require.True(t, s.tableExists("customer"))
	require.Zero(t, dbtest.CountRows(t, s.DB, "beer"))
}
