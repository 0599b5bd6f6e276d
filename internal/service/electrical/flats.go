package electrical

import (
	"context"
	"fmt"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

// CalcFlats produces the residential flat schedule. Input areas are in sqft
// and converted before the watt density is applied; the per-flat load is
// rounded first so the schedule line reads count × unit load exactly.
func CalcFlats(ctx context.Context, flats []dto.FlatTypeInput, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryFlats}

	for _, ft := range flats {
		if ft.Count == 0 || ft.AreaSqft == 0 {
			continue
		}

		f := snap.GetFactor(ctx, "RESIDENTIAL", "", "Flat Load")
		wPerSqm := ft.WattPerSqm
		if wPerSqm == 0 {
			if f.WattPerSqm != nil {
				wPerSqm = *f.WattPerSqm
			} else {
				wPerSqm = DefaultFlatWattPerSqm
			}
		}

		areaSqm := ft.AreaSqft * SqftToSqm
		perFlatKW := round3(areaSqm * wPerSqm / 1000.0)
		tcl := round3(float64(ft.Count) * perFlatKW)

		cat.Items = append(cat.Items, newItem(
			fmt.Sprintf("%s Flats", ft.FlatType),
			float64(ft.Count), perFlatKW, tcl, f))
	}

	cat.ApplyDemandFactors()
	return cat
}
