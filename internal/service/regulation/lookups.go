package regulation

import (
	"context"

	"github.com/voltplan/loadcalc/internal/domain"
)

// Fallback power factors by load type, used when the framework carries none.
var fallbackPowerFactors = map[domain.LoadType]float64{
	domain.LoadTypeSanctioned:  0.95,
	domain.LoadTypeAfterDF:     0.9,
	domain.LoadTypeTransformer: 0.9,
}

func (s *Snapshot) Frameworks(ctx context.Context) []*domain.Framework {
	return s.loadTables(ctx).frameworks
}

// MinLoadWPerSqm returns the minimum-load floor for the premise type. The
// second return is false when no standard matched.
func (s *Snapshot) MinLoadWPerSqm(ctx context.Context, premiseType string) (float64, bool) {
	for _, std := range s.loadTables(ctx).loadStandards {
		if std.PremiseType == premiseType {
			return std.MinWPerSqm, true
		}
	}
	s.warnf("no minimum-load standard for premise type %s", premiseType)
	return 0, false
}

// PowerFactor never fails: a missing row degrades to the fallback for the
// load type.
func (s *Snapshot) PowerFactor(ctx context.Context, loadType domain.LoadType) float64 {
	for _, pf := range s.loadTables(ctx).powerFactors {
		if pf.LoadType == loadType {
			return pf.Factor
		}
	}
	s.warnf("no power factor for %s, using %.2f", loadType, fallbackPowerFactors[loadType])
	return fallbackPowerFactors[loadType]
}

func (s *Snapshot) DTCThreshold(ctx context.Context, areaType domain.AreaType) *domain.DTCThreshold {
	for _, t := range s.loadTables(ctx).dtcThresholds {
		if t.AreaType == areaType || t.AreaType == domain.AreaWildcard {
			return t
		}
	}
	return nil
}

func (s *Snapshot) SanctionedLimit(ctx context.Context, consumerKind string) *domain.SanctionedLimit {
	for _, l := range s.loadTables(ctx).sanctionedLimits {
		if l.ConsumerKind == consumerKind {
			return l
		}
	}
	return nil
}

// SubstationRule selects the band whose (min, max] interval contains loadMVA
// for the area type or the ALL wildcard. Nil means no substation is required.
func (s *Snapshot) SubstationRule(ctx context.Context, areaType domain.AreaType, loadMVA float64) *domain.SubstationRule {
	for _, r := range s.loadTables(ctx).substationRules {
		if r.AreaType != areaType && r.AreaType != domain.AreaWildcard {
			continue
		}
		if loadMVA > r.MinLoadMVA && loadMVA <= r.MaxLoadMVA {
			return r
		}
	}
	return nil
}

func (s *Snapshot) LandRequirements(ctx context.Context, areaType domain.AreaType) []*domain.LandRequirement {
	var out []*domain.LandRequirement
	for _, l := range s.loadTables(ctx).landRequirements {
		if l.AreaType == areaType || l.AreaType == domain.AreaWildcard {
			out = append(out, l)
		}
	}
	return out
}

func (s *Snapshot) Lease(ctx context.Context) *domain.LeaseTerm {
	terms := s.loadTables(ctx).leaseTerms
	if len(terms) == 0 {
		return nil
	}
	return terms[0]
}

func (s *Snapshot) InfraSpecials(ctx context.Context, areaType domain.AreaType) []string {
	var out []string
	for _, sp := range s.loadTables(ctx).infraSpecials {
		if sp.AreaType == areaType || sp.AreaType == domain.AreaWildcard {
			out = append(out, sp.Requirement)
		}
	}
	return out
}
