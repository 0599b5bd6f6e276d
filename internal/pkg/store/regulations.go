package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/voltplan/loadcalc/internal/domain"
)

func (s *store) ListLoadStandards(ctx context.Context, frameworkIDs []int64) ([]*domain.LoadStandard, error) {
	query := builder().Select("id", "framework_id", "premise_type", "min_w_per_sqm").
		From(tableLoadStandards).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.LoadStandard](ctx, s.pool, query)
}

func (s *store) ListDTCThresholds(ctx context.Context, frameworkIDs []int64) ([]*domain.DTCThreshold, error) {
	query := builder().Select("id", "framework_id", "area_type", "threshold_kva",
		"unit_kva", "base_land_sqm", "increment_land_sqm").
		From(tableDTCThresholds).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.DTCThreshold](ctx, s.pool, query)
}

func (s *store) ListSanctionedLimits(ctx context.Context, frameworkIDs []int64) ([]*domain.SanctionedLimit, error) {
	query := builder().Select("id", "framework_id", "consumer_kind", "limit_kw", "limit_kva").
		From(tableSanctionedLimits).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.SanctionedLimit](ctx, s.pool, query)
}

func (s *store) ListPowerFactors(ctx context.Context, frameworkIDs []int64) ([]*domain.PowerFactor, error) {
	query := builder().Select("id", "framework_id", "load_type", "factor").
		From(tablePowerFactors).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.PowerFactor](ctx, s.pool, query)
}

func (s *store) ListSubstationRules(ctx context.Context, frameworkIDs []int64) ([]*domain.SubstationRule, error) {
	query := builder().Select("id", "framework_id", "area_type", "min_load_mva",
		"max_load_mva", "station_type", "feeders", "land_sqm").
		From(tableSubstationRules).
		Where(sq.Eq{"framework_id": frameworkIDs}).
		OrderBy("min_load_mva")

	return selectx[domain.SubstationRule](ctx, s.pool, query)
}

func (s *store) ListLandRequirements(ctx context.Context, frameworkIDs []int64) ([]*domain.LandRequirement, error) {
	query := builder().Select("id", "framework_id", "infra_type", "area_type", "land_sqm").
		From(tableLandRequirements).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.LandRequirement](ctx, s.pool, query)
}

func (s *store) ListLeaseTerms(ctx context.Context, frameworkIDs []int64) ([]*domain.LeaseTerm, error) {
	query := builder().Select("id", "framework_id", "years", "rate_per_sqm", "description").
		From(tableLeaseTerms).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.LeaseTerm](ctx, s.pool, query)
}

func (s *store) ListInfraSpecials(ctx context.Context, frameworkIDs []int64) ([]*domain.InfraSpecial, error) {
	query := builder().Select("id", "framework_id", "area_type", "requirement").
		From(tableInfraSpecials).
		Where(sq.Eq{"framework_id": frameworkIDs})

	return selectx[domain.InfraSpecial](ctx, s.pool, query)
}
