package store

import (
	"context"
	"fmt"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
)

var loadFactorColumns = []string{
	"id", "category", "sub_category", "description",
	"watt_per_sqm", "mdf", "edf", "fdf", "notes",
	"created_at", "updated_at",
}

func (s *store) ListLoadFactors(ctx context.Context) ([]*domain.LoadFactor, error) {
	query := builder().Select(loadFactorColumns...).
		From(tableLoadFactors).
		OrderBy("category, sub_category, description")

	return selectx[domain.LoadFactor](ctx, s.pool, query)
}

func (s *store) UpsertLoadFactors(ctx context.Context, factors []*domain.LoadFactor) error {
	if len(factors) == 0 {
		return nil
	}

	query := builder().Insert(tableLoadFactors).
		Columns("category", "sub_category", "description", "watt_per_sqm", "mdf", "edf", "fdf", "notes")

	for _, f := range factors {
		key := f.Key()
		query = query.Values(key.Category, key.SubCategory, key.Description,
			f.WattPerSqm, f.MDF, f.EDF, f.FDF, f.Notes)
	}

	query = query.Suffix(`
on conflict (category, sub_category, description)
do update
set
	watt_per_sqm = excluded.watt_per_sqm,
	mdf = excluded.mdf,
	edf = excluded.edf,
	fdf = excluded.fdf,
	notes = excluded.notes,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Error(ctx, err.Error())
		return fmt.Errorf("upsert load factors: %w", err)
	}

	return nil
}
