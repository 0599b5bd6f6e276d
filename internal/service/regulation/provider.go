package regulation

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/pkg/constants"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
	"github.com/voltplan/loadcalc/internal/pkg/store"
)

// Provider builds per-run Snapshots of factor and regulation reference data.
// The store may be nil, in which case every snapshot is the built-in default
// set.
type Provider struct {
	store store.Store
}

func NewProvider(st store.Store) *Provider {
	return &Provider{store: st}
}

// tables is the composite of every regulation child table for the resolved
// framework set.
type tables struct {
	frameworks       []*domain.Framework
	loadStandards    []*domain.LoadStandard
	dtcThresholds    []*domain.DTCThreshold
	sanctionedLimits []*domain.SanctionedLimit
	powerFactors     []*domain.PowerFactor
	substationRules  []*domain.SubstationRule
	landRequirements []*domain.LandRequirement
	leaseTerms       []*domain.LeaseTerm
	infraSpecials    []*domain.InfraSpecial
}

// Snapshot caches factors and regulations for exactly one calculation run.
// It is scoped to the run (or project) that created it and is never shared
// between concurrent calculations for different projects.
type Snapshot struct {
	provider       *Provider
	projectID      int64
	frameworkCodes []string

	factorsOnce sync.Once
	factors     map[domain.FactorKey]*domain.LoadFactor

	tablesOnce sync.Once
	tables     *tables

	mu       sync.Mutex
	warnings []string
	warnSeen map[string]struct{}
}

// Snapshot creates the per-run cache. Framework resolution order: explicit
// codes, then the project's selections, then the configured default code,
// then the framework flagged default, then the built-in defaults.
func (p *Provider) Snapshot(projectID int64, frameworkCodes []string) *Snapshot {
	return &Snapshot{provider: p, projectID: projectID, frameworkCodes: frameworkCodes}
}

// warnf records a fallback diagnostic once; the same miss repeated across
// buildings of one run must not multiply the advisory.
func (s *Snapshot) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.warnSeen == nil {
		s.warnSeen = make(map[string]struct{})
	}
	if _, ok := s.warnSeen[msg]; ok {
		return
	}
	s.warnSeen[msg] = struct{}{}
	s.warnings = append(s.warnings, msg)
}

// Warnings returns the fallback diagnostics accumulated so far.
func (s *Snapshot) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// LoadFactors loads and caches the factor map. Repeated calls are no-ops.
func (s *Snapshot) LoadFactors(ctx context.Context) map[domain.FactorKey]*domain.LoadFactor {
	s.factorsOnce.Do(func() {
		s.factors = make(map[domain.FactorKey]*domain.LoadFactor)

		rows := builtinFactors()
		if s.provider.store != nil {
			stored, err := s.provider.store.ListLoadFactors(ctx)
			if err != nil {
				logger.Errorf(ctx, "ListLoadFactors: %s", err.Error())
				s.warnf("load factors unavailable, using built-in defaults: %s", err.Error())
			} else if len(stored) > 0 {
				rows = stored
			}
		}

		for _, f := range rows {
			s.factors[f.Key()] = f
		}
	})

	return s.factors
}

// GetFactor returns the factor for the key or the built-in default, logging a
// diagnostic on fallback. A lookup miss is never an error.
func (s *Snapshot) GetFactor(ctx context.Context, category, subCategory, description string) *domain.LoadFactor {
	factors := s.LoadFactors(ctx)

	key := domain.NewFactorKey(category, subCategory, description)
	if f, ok := factors[key]; ok {
		return f
	}

	// retry the category-wide default bucket before giving up
	if key.SubCategory != domain.SubCategoryDefault {
		if f, ok := factors[domain.NewFactorKey(category, "", description)]; ok {
			return f
		}
	}

	logger.Warnf(ctx, "load factor miss for %s/%s/%s, using default", key.Category, key.SubCategory, key.Description)
	s.warnf("no load factor for %s/%s/%s, default demand factors applied", key.Category, key.SubCategory, key.Description)
	return domain.DefaultLoadFactor(key)
}

// loadTables resolves the framework set and loads every child table once.
func (s *Snapshot) loadTables(ctx context.Context) *tables {
	s.tablesOnce.Do(func() {
		if s.provider.store == nil {
			s.tables = builtinTables()
			return
		}

		loaded, err := s.provider.loadStoredTables(ctx, s.projectID, s.frameworkCodes)
		if err != nil {
			logger.Errorf(ctx, "loadStoredTables: %s", err.Error())
			s.warnf("regulations unavailable, using built-in defaults: %s", err.Error())
			s.tables = builtinTables()
			return
		}

		s.tables = loaded
	})

	return s.tables
}

func (p *Provider) loadStoredTables(ctx context.Context, projectID int64, codes []string) (*tables, error) {
	frameworks, err := p.resolveFrameworks(ctx, projectID, codes)
	if err != nil {
		return nil, err
	}
	if len(frameworks) == 0 {
		return nil, fmt.Errorf("no applicable framework")
	}

	ids := make([]int64, 0, len(frameworks))
	for _, fw := range frameworks {
		ids = append(ids, fw.ID)
	}

	t := &tables{frameworks: frameworks}
	if t.loadStandards, err = p.store.ListLoadStandards(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListLoadStandards: %w", err)
	}
	if t.dtcThresholds, err = p.store.ListDTCThresholds(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListDTCThresholds: %w", err)
	}
	if t.sanctionedLimits, err = p.store.ListSanctionedLimits(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListSanctionedLimits: %w", err)
	}
	if t.powerFactors, err = p.store.ListPowerFactors(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListPowerFactors: %w", err)
	}
	if t.substationRules, err = p.store.ListSubstationRules(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListSubstationRules: %w", err)
	}
	if t.landRequirements, err = p.store.ListLandRequirements(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListLandRequirements: %w", err)
	}
	if t.leaseTerms, err = p.store.ListLeaseTerms(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListLeaseTerms: %w", err)
	}
	if t.infraSpecials, err = p.store.ListInfraSpecials(ctx, ids); err != nil {
		return nil, fmt.Errorf("ListInfraSpecials: %w", err)
	}

	return t, nil
}

func (p *Provider) resolveFrameworks(ctx context.Context, projectID int64, codes []string) ([]*domain.Framework, error) {
	if len(codes) > 0 {
		frameworks := make([]*domain.Framework, 0, len(codes))
		for _, code := range codes {
			fw, err := p.store.GetFrameworkByCode(ctx, code)
			if err != nil {
				return nil, fmt.Errorf("GetFrameworkByCode %s: %w", code, err)
			}
			frameworks = append(frameworks, fw)
		}
		return frameworks, nil
	}

	if projectID != 0 {
		ids, err := p.store.ListProjectFrameworkIDs(ctx, projectID)
		if err == nil && len(ids) > 0 {
			all, err := p.store.ListFrameworks(ctx)
			if err != nil {
				return nil, fmt.Errorf("ListFrameworks: %w", err)
			}
			selected := make([]*domain.Framework, 0, len(ids))
			for _, fw := range all {
				for _, id := range ids {
					if fw.ID == id {
						selected = append(selected, fw)
					}
				}
			}
			if len(selected) > 0 {
				return selected, nil
			}
		}
	}

	if code := viper.GetString(constants.ViperDefaultFrameworkCode); code != "" {
		fw, err := p.store.GetFrameworkByCode(ctx, code)
		if err == nil {
			return []*domain.Framework{fw}, nil
		}
		logger.Warnf(ctx, "configured default framework %s unavailable: %s", code, err.Error())
	}

	fw, err := p.store.GetDefaultFramework(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetDefaultFramework: %w", err)
	}

	return []*domain.Framework{fw}, nil
}
