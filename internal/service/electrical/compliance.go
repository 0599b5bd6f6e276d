package electrical

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Comply derives the regulatory outcomes from the aggregate totals.
//
// Two load figures leave this function and they are never interchangeable:
// SanctionedKW/KVA has no diversity applied and is the billing figure;
// AfterDiversityKW/KVA is the max-demand figure used only for DTC and
// substation sizing.
func Comply(ctx context.Context, snap *regulation.Snapshot, totals domain.AggregateTotals, reg dto.RegulatoryContext, buildingCount int) *domain.ComplianceResult {
	areaType := domain.AreaType(reg.AreaType)
	if areaType == "" {
		areaType = domain.AreaUrban
	}
	premiseType := reg.PremiseType
	if premiseType == "" {
		premiseType = "RESIDENTIAL"
	}

	carpetSqm := reg.CarpetAreaSqm
	if carpetSqm == 0 && reg.CarpetAreaSqft > 0 {
		carpetSqm = reg.CarpetAreaSqft * SqftToSqm
	}

	res := &domain.ComplianceResult{AreaType: areaType}

	// 1. regulatory minimum-load floor for the carpet area
	if minW, ok := snap.MinLoadWPerSqm(ctx, premiseType); ok && carpetSqm > 0 {
		res.MinimumLoadKW = round2(carpetSqm * minW / 1000.0)
	}

	// 2. sanctioned load: billing figure, no diversity
	res.SanctionedKW = round2(math.Max(totals.GrandTCL, res.MinimumLoadKW))
	res.SanctionedKVA = round2(res.SanctionedKW / snap.PowerFactor(ctx, domain.LoadTypeSanctioned))

	// 3. load after diversity: infrastructure sizing only
	res.AfterDiversityKW = round2(totals.GrandMaxDemand)
	res.AfterDiversityKVA = round2(res.AfterDiversityKW / snap.PowerFactor(ctx, domain.LoadTypeAfterDF))

	// 4. consumer limit validation: warnings, never hard failures
	consumerKind := "SINGLE"
	if buildingCount > 1 {
		consumerKind = "MULTIPLE"
	}
	if limit := snap.SanctionedLimit(ctx, consumerKind); limit != nil {
		if limit.LimitKW > 0 && res.SanctionedKW > limit.LimitKW {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"sanctioned load %.2f kW exceeds the %s consumer limit of %.2f kW",
				res.SanctionedKW, consumerKind, limit.LimitKW))
		}
		if limit.LimitKVA > 0 && res.SanctionedKVA > limit.LimitKVA {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"sanctioned load %.2f kVA exceeds the %s consumer limit of %.2f kVA",
				res.SanctionedKVA, consumerKind, limit.LimitKVA))
		}
	}

	res.DTC = sizeDTC(ctx, snap, areaType, res.AfterDiversityKVA)
	res.Substation = sizeSubstation(ctx, snap, areaType, res.AfterDiversityKVA)

	// 7. land: DTC plus substation, itemized by type
	if res.DTC.Needed && res.DTC.LandSqm > 0 {
		res.LandItems = append(res.LandItems, domain.LandRequirement{
			InfraType: "DTC", AreaType: areaType, LandSqm: res.DTC.LandSqm,
		})
	}
	if res.Substation.Needed && res.Substation.LandSqm > 0 {
		res.LandItems = append(res.LandItems, domain.LandRequirement{
			InfraType: "SUBSTATION", AreaType: areaType, LandSqm: res.Substation.LandSqm,
		})
	}

	// ancillary land (ring-main units and the like) rides along whenever a DTC
	// is required; DTC and substation land is already sized above
	if res.DTC.Needed {
		for _, lr := range snap.LandRequirements(ctx, areaType) {
			if lr.InfraType == "DTC" || lr.InfraType == "SUBSTATION" {
				continue
			}
			res.LandItems = append(res.LandItems, domain.LandRequirement{
				InfraType: lr.InfraType, AreaType: areaType, LandSqm: lr.LandSqm,
			})
		}
	}
	for _, item := range res.LandItems {
		res.TotalLandSqm += item.LandSqm
	}
	res.TotalLandSqm = round2(res.TotalLandSqm)

	if res.TotalLandSqm > 0 {
		res.Lease = snap.Lease(ctx)
	}

	return res
}

// sizeDTC compares the after-diversity load against the area-type threshold.
// Missing regulation data degrades to "not needed" with a reason.
func sizeDTC(ctx context.Context, snap *regulation.Snapshot, areaType domain.AreaType, loadKVA float64) domain.DTCRequirement {
	threshold := snap.DTCThreshold(ctx, areaType)
	if threshold == nil {
		return domain.DTCRequirement{Needed: false, Reason: fmt.Sprintf("no DTC threshold for area type %s", areaType)}
	}

	if loadKVA <= threshold.ThresholdKVA {
		return domain.DTCRequirement{Needed: false, Reason: fmt.Sprintf(
			"load %.2f kVA within the %.0f kVA threshold", loadKVA, threshold.ThresholdKVA)}
	}

	unitKVA := threshold.UnitKVA
	if unitKVA == 0 {
		unitKVA = 500
	}

	count := int(math.Ceil(loadKVA / unitKVA))
	req := domain.DTCRequirement{
		Needed:  true,
		Count:   count,
		UnitKVA: unitKVA,
		LandSqm: threshold.BaseLandSqm + float64(count-1)*threshold.IncrementLandSqm,
	}

	if areaType == domain.AreaMetro || areaType == domain.AreaMajorCity {
		req.SpecialNotes = snap.InfraSpecials(ctx, areaType)
	}

	return req
}

// sizeSubstation selects the band containing the after-diversity load in MVA.
// No matching band means no substation is required.
func sizeSubstation(ctx context.Context, snap *regulation.Snapshot, areaType domain.AreaType, loadKVA float64) domain.SubstationRequirement {
	loadMVA := loadKVA / 1000.0

	rule := snap.SubstationRule(ctx, areaType, loadMVA)
	if rule == nil {
		return domain.SubstationRequirement{Needed: false, Reason: fmt.Sprintf(
			"no substation band covers %.3f MVA for area type %s", loadMVA, areaType)}
	}

	return domain.SubstationRequirement{
		Needed:      true,
		StationType: rule.StationType,
		Feeders:     rule.Feeders,
		LandSqm:     rule.LandSqm,
	}
}
