package store

import (
	"context"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the reference-data access layer: load factors plus the regulation
// tables of the jurisdictional frameworks.
type Store interface {
	ListLoadFactors(ctx context.Context) ([]*domain.LoadFactor, error)
	UpsertLoadFactors(ctx context.Context, factors []*domain.LoadFactor) error

	ListFrameworks(ctx context.Context) ([]*domain.Framework, error)
	GetDefaultFramework(ctx context.Context) (*domain.Framework, error)
	GetFrameworkByCode(ctx context.Context, code string) (*domain.Framework, error)
	UpsertFramework(ctx context.Context, code, name string, isDefault bool) (*domain.Framework, error)
	ListProjectFrameworkIDs(ctx context.Context, projectID int64) ([]int64, error)

	ListLoadStandards(ctx context.Context, frameworkIDs []int64) ([]*domain.LoadStandard, error)
	ListDTCThresholds(ctx context.Context, frameworkIDs []int64) ([]*domain.DTCThreshold, error)
	ListSanctionedLimits(ctx context.Context, frameworkIDs []int64) ([]*domain.SanctionedLimit, error)
	ListPowerFactors(ctx context.Context, frameworkIDs []int64) ([]*domain.PowerFactor, error)
	ListSubstationRules(ctx context.Context, frameworkIDs []int64) ([]*domain.SubstationRule, error)
	ListLandRequirements(ctx context.Context, frameworkIDs []int64) ([]*domain.LandRequirement, error)
	ListLeaseTerms(ctx context.Context, frameworkIDs []int64) ([]*domain.LeaseTerm, error)
	ListInfraSpecials(ctx context.Context, frameworkIDs []int64) ([]*domain.InfraSpecial, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
