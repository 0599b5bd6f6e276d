package electrical

import (
	"context"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

// CalcLifts produces the lift schedule. Per-lift power comes from the height
// band table; only the fire-rated classes carry a fire demand factor, since
// passenger-only lifts are assumed shed during a fire.
func CalcLifts(ctx context.Context, in *dto.ElectricalInputs, heightM float64, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryLifts}
	unitKW := liftUnitKW(heightM)

	passengers := 0
	if in.PassengerLifts != nil {
		passengers = *in.PassengerLifts
	}

	classes := []struct {
		desc  string
		count int
	}{
		{"Passenger Lift", passengers},
		{"Passenger cum Fire Lift", in.FirePassengerLifts},
		{"Firemen Evacuation Lift", in.FiremenLifts},
	}

	for _, c := range classes {
		if c.count == 0 {
			continue
		}
		tcl := float64(c.count) * unitKW
		cat.Items = append(cat.Items,
			newItem(c.desc, float64(c.count), unitKW, tcl,
				snap.GetFactor(ctx, "LIFTS", "", c.desc)))
	}

	cat.ApplyDemandFactors()
	return cat
}
