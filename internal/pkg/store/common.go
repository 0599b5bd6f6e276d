package store

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/voltplan/loadcalc/internal/pkg/constants"
)

const (
	tableLoadFactors       = "load_factors"
	tableFrameworks        = "frameworks"
	tableProjectFrameworks = "project_frameworks"
	tableLoadStandards     = "load_standards"
	tableDTCThresholds     = "dtc_thresholds"
	tableSanctionedLimits  = "sanctioned_limits"
	tablePowerFactors      = "power_factors"
	tableSubstationRules   = "substation_rules"
	tableLandRequirements  = "land_requirements"
	tableLeaseTerms        = "lease_terms"
	tableInfraSpecials     = "infra_specials"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel SQL builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// selectx runs the query and collects every row into T by column name.
func selectx[T any](ctx context.Context, pool Pool, query squirrel.Sqlizer) ([]*T, error) {
	rows, err := pool.Queryx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	selected, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// getx runs the query and collects exactly one row into T.
func getx[T any](ctx context.Context, pool Pool, query squirrel.Sqlizer) (*T, error) {
	rows, err := pool.Queryx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	selected, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
