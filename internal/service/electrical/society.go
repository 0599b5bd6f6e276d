package electrical

import (
	"context"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

// CalcSocietyLoads produces the society-level categories. Every item is
// gated on its triggering input being present, so an empty configuration
// yields empty categories rather than phantom loads.
func CalcSocietyLoads(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot) []domain.LoadCategory {
	fire := domain.LoadCategory{Name: CategorySocietyFire}

	if in.SocietyFireMainPumpKW > 0 {
		fire.Items = append(fire.Items,
			newItem("Fire Main Pump", 1, in.SocietyFireMainPumpKW, in.SocietyFireMainPumpKW,
				snap.GetFactor(ctx, "SOCIETY", "FIRE", "Fire Main Pump")))
	}
	if in.SocietyFireJockeyPumpKW > 0 {
		fire.Items = append(fire.Items,
			newItem("Fire Jockey Pump", 1, in.SocietyFireJockeyPumpKW, in.SocietyFireJockeyPumpKW,
				snap.GetFactor(ctx, "SOCIETY", "FIRE", "Fire Jockey Pump")))
	}
	if in.SocietySprinklerPumpKW > 0 {
		fire.Items = append(fire.Items,
			newItem("Sprinkler Pump", 1, in.SocietySprinklerPumpKW, in.SocietySprinklerPumpKW,
				snap.GetFactor(ctx, "SOCIETY", "FIRE", "Sprinkler Pump")))
	}
	fire.ApplyDemandFactors()

	infra := domain.LoadCategory{Name: CategorySocietyInfra}

	if in.DomesticTransferPumpKW > 0 {
		working, _ := parseWorkingStandby(ctx, in.DomesticTransferConfig, "1W+1S")
		tcl := in.DomesticTransferPumpKW * float64(working)
		infra.Items = append(infra.Items,
			newItem("Domestic Transfer Pump", float64(working), in.DomesticTransferPumpKW, tcl,
				snap.GetFactor(ctx, "SOCIETY", "", "Domestic Transfer Pump")))
	}

	if in.STPCapacityKLD > 0 {
		tcl := in.STPCapacityKLD * STPKWPerKLD
		infra.Items = append(infra.Items,
			newItem("STP", 1, tcl, tcl, snap.GetFactor(ctx, "SOCIETY", "", "STP")))
	}

	if in.WTPCapacityKLD > 0 {
		tcl := in.WTPCapacityKLD * WTPKWPerKLD
		infra.Items = append(infra.Items,
			newItem("WTP", 1, tcl, tcl, snap.GetFactor(ctx, "SOCIETY", "", "WTP")))
	}

	if in.ClubhouseAreaSqm > 0 {
		f := snap.GetFactor(ctx, "SOCIETY", "", "Clubhouse")
		wPerSqm := ClubhouseWattPerSqm
		if f.WattPerSqm != nil {
			wPerSqm = *f.WattPerSqm
		}
		tcl := in.ClubhouseAreaSqm * wPerSqm / 1000.0
		infra.Items = append(infra.Items, newItem("Clubhouse", 1, tcl, tcl, f))
	}

	if in.EVChargers > 0 {
		unitKW := in.EVChargerKW
		if unitKW == 0 {
			unitKW = DefaultEVChargerKW
		}
		tcl := float64(in.EVChargers) * unitKW
		infra.Items = append(infra.Items,
			newItem("EV Charging", float64(in.EVChargers), unitKW, tcl,
				snap.GetFactor(ctx, "SOCIETY", "", "EV Charging")))
	}

	if in.StreetLightPoles > 0 {
		unitW := in.StreetLightW
		if unitW == 0 {
			unitW = DefaultStreetLightW
		}
		tcl := float64(in.StreetLightPoles) * unitW / 1000.0
		infra.Items = append(infra.Items,
			newItem("Street Lighting", float64(in.StreetLightPoles), unitW/1000.0, tcl,
				snap.GetFactor(ctx, "SOCIETY", "", "Street Lighting")))
	}
	infra.ApplyDemandFactors()

	return []domain.LoadCategory{fire, infra}
}
