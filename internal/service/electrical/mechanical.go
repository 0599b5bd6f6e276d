package electrical

import (
	"context"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

// The mechanical categories all follow the same shape: a unit power derived
// from a sizing parameter, multiplied by the working unit count of a
// "<n>W+<m>S" configuration.

// CalcHVACElectrical sizes the chiller-plant electrical load from tonnage.
func CalcHVACElectrical(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryHVAC}

	if in.HVACTonnageTR > 0 {
		working, _ := parseWorkingStandby(ctx, in.HVACConfig, "1W")
		unitKW := in.HVACTonnageTR * HVACKWPerTR / float64(working)
		tcl := unitKW * float64(working)
		cat.Items = append(cat.Items,
			newItem("HVAC Plant", float64(working), unitKW, tcl,
				snap.GetFactor(ctx, "HVAC", "", "HVAC Plant")))
	}

	cat.ApplyDemandFactors()
	return cat
}

// CalcPressurization sizes staircase and lobby pressurization fans from CFM.
func CalcPressurization(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryPressurization}

	if in.PressurizationCFM > 0 {
		working, _ := parseWorkingStandby(ctx, in.PressurizationConfig, "1W")
		unitKW := in.PressurizationCFM * PressurizationKWPerCFM
		tcl := unitKW * float64(working)
		cat.Items = append(cat.Items,
			newItem("Pressurization Fans", float64(working), unitKW, tcl,
				snap.GetFactor(ctx, "VENTILATION", "", "Pressurization Fans")))
	}

	cat.ApplyDemandFactors()
	return cat
}

// CalcPHE sizes the public-health-engineering (water transfer) pumps.
func CalcPHE(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryPHE}

	if in.PHEFlowLPM > 0 {
		working, _ := parseWorkingStandby(ctx, in.PHEConfig, "1W+1S")
		unitKW := in.PHEFlowLPM * PHEPumpKWPerLPM
		tcl := unitKW * float64(working)
		cat.Items = append(cat.Items,
			newItem("PHE Pumps", float64(working), unitKW, tcl,
				snap.GetFactor(ctx, "PHE", "", "PHE Pumps")))
	}

	cat.ApplyDemandFactors()
	return cat
}

// CalcFireFighting sizes sprinkler, hydrant and jockey pumps. Sprinkler and
// hydrant pumps carry FDF 0.25 from the factor table: the jockey baseline
// plus the main-pump-on-fire consideration.
func CalcFireFighting(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryFire}

	if in.SprinklerPumpLPM > 0 {
		working, _ := parseWorkingStandby(ctx, in.FirePumpConfig, "1W+1S")
		unitKW := in.SprinklerPumpLPM * FirePumpKWPerLPM
		tcl := unitKW * float64(working)
		cat.Items = append(cat.Items,
			newItem("Sprinkler Pump", float64(working), unitKW, tcl,
				snap.GetFactor(ctx, "FIRE", "", "Sprinkler Pump")))
	}

	if in.HydrantPumpLPM > 0 {
		working, _ := parseWorkingStandby(ctx, in.FirePumpConfig, "1W+1S")
		unitKW := in.HydrantPumpLPM * FirePumpKWPerLPM
		tcl := unitKW * float64(working)
		cat.Items = append(cat.Items,
			newItem("Hydrant Pump", float64(working), unitKW, tcl,
				snap.GetFactor(ctx, "FIRE", "", "Hydrant Pump")))
	}

	if in.JockeyPumpKW > 0 {
		cat.Items = append(cat.Items,
			newItem("Jockey Pump", 1, in.JockeyPumpKW, in.JockeyPumpKW,
				snap.GetFactor(ctx, "FIRE", "", "Jockey Pump")))
	}

	cat.ApplyDemandFactors()
	return cat
}
