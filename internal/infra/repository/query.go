package repository

import (
	"context"
	"strings"

	"beer-service/internal/infra"
	"beer-service/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const initialVersion int32 = 1

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// casMiss tells a vanished row (not found) from a moved version (conflict)
// after a versioned UPDATE matched nothing.
func casMiss(ctx context.Context, dbtx db.DBTX, table string, id uuid.UUID, entity string) error {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build "+entity+" existence query", err)
	}

	var exists bool
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check "+entity+" existence", err)
	}
	if !exists {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr(entity+" was modified concurrently", nil, infra.KindConflict)
}

func deleteByID(ctx context.Context, dbtx db.DBTX, table string, id uuid.UUID) (bool, error) {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build delete from "+table, err)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete from "+table, err)
	}
	return tag.RowsAffected() > 0, nil
}

func count(ctx context.Context, dbtx db.DBTX, table string) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build count of "+table, err)
	}

	var n int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count "+table, err)
	}
	return n, nil
}
