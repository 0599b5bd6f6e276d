package hvac

import (
	"fmt"
	"math"

	"github.com/voltplan/loadcalc/internal/domain"
)

// Standard catalog sizes. Selection rounds up to the next entry.
var standardChillerTR = []float64{10, 15, 20, 30, 40, 50, 60, 80, 100, 120, 150, 180, 200, 250, 300, 400, 500}

var standardAHUCFM = []float64{400, 600, 800, 1200, 1600, 2000, 3000, 4000, 5000, 7500, 10000, 12500, 15000, 17500, 20000}

const (
	maxAHUUnitCFM  = 20000.0
	ahuFanKWPerCFM = 0.0007

	coolingTowerFactor = 1.25
	towerGPMPerTR      = 3.0
	towerFanKWPerTR    = 0.02

	singleChillerBelowTR = 30.0
)

// chiller kW/TR by tonnage band.
type chillerClass struct {
	MaxTR   float64
	Name    string
	KWPerTR float64
}

var chillerClasses = []chillerClass{
	{60, "air-cooled scroll", 1.25},
	{150, "water-cooled screw", 0.72},
	{math.MaxFloat64, "water-cooled centrifugal", 0.58},
}

func nextStandard(sizes []float64, v float64) float64 {
	for _, s := range sizes {
		if v <= s {
			return s
		}
	}
	return sizes[len(sizes)-1]
}

func classFor(workingTR float64) chillerClass {
	for _, c := range chillerClasses {
		if workingTR <= c.MaxTR {
			return c
		}
	}
	return chillerClasses[len(chillerClasses)-1]
}

// SizeChillers selects the chiller arrangement for the diversified tonnage:
// one machine below 30 TR, otherwise two working plus one standby at half the
// diversified load each, rounded up to the next catalog size.
func SizeChillers(diversifiedTR float64) domain.ChillerSizing {
	if diversifiedTR <= 0 {
		return domain.ChillerSizing{Configuration: "0"}
	}

	working, standby := 2, 1
	perUnit := diversifiedTR / 2.0
	if diversifiedTR < singleChillerBelowTR {
		working, standby = 1, 0
		perUnit = diversifiedTR
	}

	unitTR := nextStandard(standardChillerTR, perUnit)
	workingTR := unitTR * float64(working)
	class := classFor(workingTR)

	config := fmt.Sprintf("%dW", working)
	if standby > 0 {
		config = fmt.Sprintf("%dW+%dS", working, standby)
	}

	return domain.ChillerSizing{
		Configuration: config,
		WorkingUnits:  working,
		StandbyUnits:  standby,
		UnitTR:        unitTR,
		InstalledTR:   unitTR * float64(working+standby),
		ChillerClass:  class.Name,
		KWPerTR:       class.KWPerTR,
		TotalPowerKW:  round1(class.KWPerTR * workingTR),
	}
}

// SizeAHUs splits the total airflow across units capped at 20,000 CFM each.
func SizeAHUs(totalCFM float64) domain.AHUSizing {
	if totalCFM <= 0 {
		return domain.AHUSizing{}
	}

	units := int(math.Ceil(totalCFM / maxAHUUnitCFM))
	unitCFM := nextStandard(standardAHUCFM, totalCFM/float64(units))

	return domain.AHUSizing{
		Units:      units,
		UnitCFM:    unitCFM,
		TotalCFM:   unitCFM * float64(units),
		FanPowerKW: round1(ahuFanKWPerCFM * unitCFM * float64(units)),
	}
}

// SizeCoolingTower sizes the condenser side from the working chiller tonnage.
func SizeCoolingTower(chillerTR float64) domain.CoolingTowerSizing {
	if chillerTR <= 0 {
		return domain.CoolingTowerSizing{}
	}

	return domain.CoolingTowerSizing{
		CapacityTR:   round1(chillerTR * coolingTowerFactor),
		WaterFlowGPM: round1(chillerTR * towerGPMPerTR),
		FanPowerKW:   round1(chillerTR * towerFanKWPerTR),
	}
}
