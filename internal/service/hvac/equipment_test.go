package hvac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeChillersTwoWorkingOneStandby(t *testing.T) {
	s := SizeChillers(40)

	assert.Equal(t, "2W+1S", s.Configuration)
	assert.Equal(t, 2, s.WorkingUnits)
	assert.Equal(t, 1, s.StandbyUnits)
	assert.Equal(t, float64(20), s.UnitTR) // next catalog size for 40/2
	assert.Equal(t, float64(60), s.InstalledTR)
	assert.Equal(t, "air-cooled scroll", s.ChillerClass)
	assert.Equal(t, 1.25, s.KWPerTR)
	assert.InDelta(t, 50, s.TotalPowerKW, 0.1) // 1.25 × 40 working TR
}

func TestSizeChillersSingleBelow30TR(t *testing.T) {
	s := SizeChillers(25)

	assert.Equal(t, "1W", s.Configuration)
	assert.Equal(t, 1, s.WorkingUnits)
	assert.Zero(t, s.StandbyUnits)
	assert.Equal(t, float64(30), s.UnitTR)
	assert.Equal(t, float64(30), s.InstalledTR)
}

func TestSizeChillersClassBands(t *testing.T) {
	// 200 diversified → 2 × 100 TR working = 200 TR → screw band ends at 150
	s := SizeChillers(200)
	assert.Equal(t, "water-cooled centrifugal", s.ChillerClass)
	assert.Equal(t, 0.58, s.KWPerTR)

	// 120 diversified → 2 × 60 TR working = 120 TR → water-cooled screw
	s = SizeChillers(120)
	assert.Equal(t, "water-cooled screw", s.ChillerClass)
	assert.Equal(t, 0.72, s.KWPerTR)
}

func TestSizeChillersZeroLoad(t *testing.T) {
	s := SizeChillers(0)
	assert.Equal(t, "0", s.Configuration)
	assert.Zero(t, s.WorkingUnits)
	assert.Zero(t, s.InstalledTR)
}

func TestNextStandardRoundsUp(t *testing.T) {
	assert.Equal(t, float64(10), nextStandard(standardChillerTR, 1))
	assert.Equal(t, float64(20), nextStandard(standardChillerTR, 15.1))
	assert.Equal(t, float64(500), nextStandard(standardChillerTR, 500))
	// past the catalog end the largest size is returned
	assert.Equal(t, float64(500), nextStandard(standardChillerTR, 900))
}

func TestSizeAHUsSplitAtUnitCap(t *testing.T) {
	s := SizeAHUs(45000)

	assert.Equal(t, 3, s.Units) // ceil(45000/20000)
	assert.Equal(t, float64(15000), s.UnitCFM)
	assert.Equal(t, float64(45000), s.TotalCFM)
	assert.InDelta(t, 31.5, s.FanPowerKW, 0.1) // 0.0007 kW/CFM
}

func TestSizeAHUsSingleUnit(t *testing.T) {
	s := SizeAHUs(1000)

	assert.Equal(t, 1, s.Units)
	assert.Equal(t, float64(1200), s.UnitCFM)

	assert.Zero(t, SizeAHUs(0).Units)
}

func TestSizeCoolingTower(t *testing.T) {
	s := SizeCoolingTower(40)

	assert.InDelta(t, 50, s.CapacityTR, 0.1)    // 1.25 oversize
	assert.InDelta(t, 120, s.WaterFlowGPM, 0.1) // 3 GPM/TR
	assert.InDelta(t, 0.8, s.FanPowerKW, 0.1)

	assert.Zero(t, SizeCoolingTower(0).CapacityTR)
}
