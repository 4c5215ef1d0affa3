//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"beer-service/internal/infra"
	"beer-service/internal/infra/repository"
	"beer-service/internal/pkg/errs"
	"beer-service/tests/common/builder"
	dbmock "beer-service/tests/mock/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Update (compare-and-swap)
// =============================================================================

func TestBeerRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*dbmock.MockDBTX, *capturedSQL)
		expectKind infra.RepositoryErrorKind
		sentinel   error
	}{
		{
			name: "error: version moved on",
			setupMock: func(m *dbmock.MockDBTX, c *capturedSQL) {
				m.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.rows(emptyRows{}, nil))
				m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.row(scalarRow[bool]{value: true}))
			},
			expectKind: infra.KindConflict,
			sentinel:   errs.ErrConflict,
		},
		{
			name: "error: row is gone",
			setupMock: func(m *dbmock.MockDBTX, c *capturedSQL) {
				m.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.rows(emptyRows{}, nil))
				m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.row(scalarRow[bool]{value: false}))
			},
			expectKind: infra.KindNotFound,
			sentinel:   errs.ErrNotFound,
		},
		{
			name: "error: existence check fails",
			setupMock: func(m *dbmock.MockDBTX, c *capturedSQL) {
				m.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.rows(emptyRows{}, nil))
				m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.row(scalarRow[bool]{err: errors.New("connection reset")}))
			},
			expectKind: infra.KindDBFailure,
			sentinel:   errs.ErrDatabaseOperationFailed,
		},
		{
			name: "error: update fails",
			setupMock: func(m *dbmock.MockDBTX, c *capturedSQL) {
				m.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(c.rows(nil, errors.New("connection reset")))
			},
			expectKind: infra.KindDBFailure,
			sentinel:   errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockDBTX(ctrl)
			captured := &capturedSQL{}
			tc.setupMock(mockDB, captured)
			repo := repository.NewBeerRepository(mockDB)

			_, err := repo.Update(ctx, builder.NewBeerBuilder().BuildStored())

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			assert.ErrorIs(t, err, tc.sentinel)

			require.NotEmpty(t, captured.statements)
			update := captured.statements[0]
			assert.Contains(t, update, "UPDATE beer SET")
			assert.Contains(t, update, "version = version + 1")
			assert.Contains(t, update, "WHERE id = $")
			assert.Contains(t, update, "AND version = $")
			assert.Contains(t, update, "RETURNING id, version")
			assert.NotContains(t, update, "created_date =")
			if len(captured.statements) > 1 {
				assert.Contains(t, captured.statements[1], "SELECT EXISTS (")
			}
		})
	}
}

// =============================================================================
// Read
// =============================================================================

func TestBeerRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("error: no row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(emptyRows{}, nil)

		_, err := repository.NewBeerRepository(mockDB).FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("error: query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := repository.NewBeerRepository(mockDB).FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}

func TestBeerRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	captured := &capturedSQL{}
	mockDB.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(captured.rows(emptyRows{}, nil))

	beers, err := repository.NewBeerRepository(mockDB).FindAll(ctx)

	require.NoError(t, err)
	assert.Empty(t, beers)
	require.Len(t, captured.statements, 1)
	assert.Contains(t, captured.statements[0], "ORDER BY created_date, id")
}

// =============================================================================
// Save
// =============================================================================

func TestBeerRepository_Save(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: duplicate id", err: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			captured := &capturedSQL{}
			mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(captured.rows(nil, tc.err))

			_, err := repository.NewBeerRepository(mockDB).Save(ctx, builder.NewBeerBuilder().BuildDomain())

			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
			require.Len(t, captured.statements, 1)
			assert.Contains(t, captured.statements[0], "INSERT INTO beer (id,version,beer_name")
		})
	}
}

// =============================================================================
// Delete / Count
// =============================================================================

func TestBeerRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		tag    string
		err    error
		want   bool
		hasErr bool
	}{
		{name: "success: row deleted", tag: "DELETE 1", want: true},
		{name: "success: nothing to delete", tag: "DELETE 0", want: false},
		{name: "error: database error occurs", err: errors.New("database connection error"), hasErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			mockDB.EXPECT().Exec(gomock.Any(), "DELETE FROM beer WHERE id = $1", gomock.Any()).
				Return(pgconn.NewCommandTag(tc.tag), tc.err)

			deleted, err := repository.NewBeerRepository(mockDB).DeleteByID(ctx, uuid.New())

			if tc.hasErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, deleted)
		})
	}
}

func TestBeerRepository_Count(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	mockDB.EXPECT().QueryRow(gomock.Any(), "SELECT COUNT(*) FROM beer").Return(scalarRow[int64]{value: 3})

	n, err := repository.NewBeerRepository(mockDB).Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
