package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/voltplan/loadcalc/internal/domain"
)

var frameworkColumns = []string{"id", "code", "name", "is_default", "created_at", "updated_at"}

func (s *store) ListFrameworks(ctx context.Context) ([]*domain.Framework, error) {
	query := builder().Select(frameworkColumns...).
		From(tableFrameworks).
		OrderBy("code")

	return selectx[domain.Framework](ctx, s.pool, query)
}

func (s *store) GetDefaultFramework(ctx context.Context) (*domain.Framework, error) {
	query := builder().Select(frameworkColumns...).
		From(tableFrameworks).
		Where(sq.Eq{"is_default": true}).
		Limit(1)

	return getx[domain.Framework](ctx, s.pool, query)
}

func (s *store) GetFrameworkByCode(ctx context.Context, code string) (*domain.Framework, error) {
	query := builder().Select(frameworkColumns...).
		From(tableFrameworks).
		Where(sq.Eq{"code": code})

	return getx[domain.Framework](ctx, s.pool, query)
}

func (s *store) UpsertFramework(ctx context.Context, code, name string, isDefault bool) (*domain.Framework, error) {
	query := builder().Insert(tableFrameworks).
		Columns("code", "name", "is_default").
		Values(code, name, isDefault).
		Suffix(`on conflict (code) do update set name=excluded.name`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return s.GetFrameworkByCode(ctx, code)
}

func (s *store) ListProjectFrameworkIDs(ctx context.Context, projectID int64) ([]int64, error) {
	query := builder().Select("framework_id").
		From(tableProjectFrameworks).
		Where(sq.Eq{"project_id": projectID})

	rows, err := s.pool.Queryx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, wrapErr(err)
	}

	return ids, nil
}
