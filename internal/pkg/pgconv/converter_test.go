//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"testing"

	"beer-service/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

func TestPgErrorCode(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgconv.CodeUniqueViolation})

	assert.Equal(t, pgconv.CodeUniqueViolation, pgconv.PgErrorCode(unique))
	assert.True(t, pgconv.IsUniqueViolation(unique))
	assert.Empty(t, pgconv.PgErrorCode(assert.AnError))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, pgconv.IsRetryable(&pgconn.PgError{Code: pgconv.CodeSerializationFailure}))
	assert.True(t, pgconv.IsRetryable(&pgconn.PgError{Code: pgconv.CodeDeadlockDetected}))
	assert.False(t, pgconv.IsRetryable(&pgconn.PgError{Code: pgconv.CodeUniqueViolation}))
}
