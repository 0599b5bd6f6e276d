package electrical

import (
	"github.com/shopspring/decimal"

	"github.com/voltplan/loadcalc/internal/domain"
)

// MergeCategories folds src into dst, matching categories by name and items
// by description. Quantities, TCL and all three demand totals add; unit-rate
// fields keep the first value seen and are never re-averaged.
func MergeCategories(dst, src []domain.LoadCategory) []domain.LoadCategory {
	for _, cat := range src {
		idx := -1
		for i := range dst {
			if dst[i].Name == cat.Name {
				idx = i
				break
			}
		}
		if idx == -1 {
			cp := cat
			cp.Items = append([]domain.LoadItem(nil), cat.Items...)
			dst = append(dst, cp)
			continue
		}

		for _, item := range cat.Items {
			merged := false
			for j := range dst[idx].Items {
				if dst[idx].Items[j].Description != item.Description {
					continue
				}
				existing := &dst[idx].Items[j]
				existing.Nos += item.Nos
				existing.TCL = addRound3(existing.TCL, item.TCL)
				existing.MaxDemandKW = addRound3(existing.MaxDemandKW, item.MaxDemandKW)
				existing.EssentialKW = addRound3(existing.EssentialKW, item.EssentialKW)
				existing.FireKW = addRound3(existing.FireKW, item.FireKW)
				merged = true
				break
			}
			if !merged {
				dst[idx].Items = append(dst[idx].Items, item)
			}
		}
		dst[idx].RecomputeTotals()
	}

	return dst
}

func addRound3(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(3).InexactFloat64()
}

// Aggregate rolls building breakdowns and society categories into the grand
// totals and the rule-of-thumb transformer estimate.
func Aggregate(breakdowns []domain.BuildingBreakdown, society []domain.LoadCategory) domain.AggregateTotals {
	var totals domain.AggregateTotals

	var bTCL, bMD, ess, fire decimal.Decimal
	for i := range breakdowns {
		bTCL = bTCL.Add(decimal.NewFromFloat(breakdowns[i].TotalTCL))
		bMD = bMD.Add(decimal.NewFromFloat(breakdowns[i].TotalMaxDemand))
		ess = ess.Add(decimal.NewFromFloat(breakdowns[i].TotalEssential))
		fire = fire.Add(decimal.NewFromFloat(breakdowns[i].TotalFire))
	}
	totals.BuildingTCL = bTCL.Round(3).InexactFloat64()
	totals.BuildingMaxDemand = bMD.Round(3).InexactFloat64()

	var sTCL, sMD decimal.Decimal
	for i := range society {
		sTCL = sTCL.Add(decimal.NewFromFloat(society[i].TotalTCL))
		sMD = sMD.Add(decimal.NewFromFloat(society[i].TotalMaxDemand))
		ess = ess.Add(decimal.NewFromFloat(society[i].TotalEssential))
		fire = fire.Add(decimal.NewFromFloat(society[i].TotalFire))
	}
	totals.SocietyTCL = sTCL.Round(3).InexactFloat64()
	totals.SocietyMaxDemand = sMD.Round(3).InexactFloat64()

	totals.GrandTCL = addRound3(totals.BuildingTCL, totals.SocietyTCL)
	totals.GrandMaxDemand = addRound3(totals.BuildingMaxDemand, totals.SocietyMaxDemand)
	totals.GrandEssential = ess.Round(3).InexactFloat64()
	totals.GrandFire = fire.Round(3).InexactFloat64()

	totals.TransformerKVA = domain.EstimateTransformerKVA(totals.GrandMaxDemand)

	return totals
}

// MultiplyBreakdown scales a representative building's totals by count. This
// is the explicit single-building approximation used when no per-building
// metadata exists; callers must flag it, never hide it.
func MultiplyBreakdown(b domain.BuildingBreakdown, count int) []domain.BuildingBreakdown {
	out := make([]domain.BuildingBreakdown, 0, count)
	for i := 0; i < count; i++ {
		cp := b
		out = append(out, cp)
	}
	return out
}
