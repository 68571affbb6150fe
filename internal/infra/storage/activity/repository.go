package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/pkg/psqlbuilder"
)

const tableName = "activity_log"

const schema = `
CREATE TABLE IF NOT EXISTS activity_log (
    id          UUID PRIMARY KEY,
    method      VARCHAR(10)  NOT NULL,
    resource    VARCHAR(64)  NOT NULL,
    resource_id VARCHAR(128),
    status_code INTEGER      NOT NULL,
    actor       VARCHAR(255),
    summary     TEXT         NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_activity_log_created_at ON activity_log (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_activity_log_resource ON activity_log (resource, created_at DESC);
`

var columns = []string{
	"id",
	"method",
	"resource",
	"resource_id",
	"status_code",
	"actor",
	"summary",
	"created_at",
}

// Repository журнал действий в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу журнала, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Create сохраняет запись журнала
func (r *Repository) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	query, args, err := buildInsertQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает последние записи, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.ActivityEntry, 0, filter.NormalizedLimit())
	for rows.Next() {
		var (
			e          domain.ActivityEntry
			resourceID sql.NullString
			actor      sql.NullString
		)
		if err := rows.Scan(
			&e.ID,
			&e.Method,
			&e.Resource,
			&resourceID,
			&e.StatusCode,
			&actor,
			&e.Summary,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan entry: %v", ErrScanRow, err)
		}
		if resourceID.Valid {
			e.ResourceID = &resourceID.String
		}
		if actor.Valid {
			e.Actor = &actor.String
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

// DeleteOlderThan удаляет записи старше указанного момента, возвращает число удаленных
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - rows affected: %v", ErrExecQuery, err)
	}
	return n, nil
}

func buildInsertQuery(entry *domain.ActivityEntry) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			entry.ID,
			entry.Method,
			entry.Resource,
			entry.ResourceID,
			entry.StatusCode,
			entry.Actor,
			entry.Summary,
			entry.CreatedAt,
		).
		ToSql()
}

func buildListQuery(filter domain.ActivityFilter) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC").
		Limit(uint64(filter.NormalizedLimit()))

	if filter.Resource != nil {
		builder = builder.Where(squirrel.Eq{"resource": *filter.Resource})
	}

	return builder.ToSql()
}
