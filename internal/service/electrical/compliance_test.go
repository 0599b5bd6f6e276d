package electrical

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

func testSnapshot() *regulation.Snapshot {
	return regulation.NewProvider(nil).Snapshot(0, nil)
}

func TestComplyDTCAndSubstationSizing(t *testing.T) {
	// 540 kW after diversity at PF 0.9 is exactly 600 kVA = 0.6 MVA
	totals := domain.AggregateTotals{GrandTCL: 900, GrandMaxDemand: 540}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{AreaType: "URBAN"}, 2)

	assert.InDelta(t, 600, res.AfterDiversityKVA, 0.01)

	require.True(t, res.DTC.Needed)
	assert.Equal(t, 2, res.DTC.Count) // ceil(600/500)
	assert.Equal(t, float64(500), res.DTC.UnitKVA)
	assert.InDelta(t, 80, res.DTC.LandSqm, 0.01) // 50 + (2-1)×30
	assert.Empty(t, res.DTC.SpecialNotes)

	require.True(t, res.Substation.Needed)
	assert.Equal(t, "33/11kV Switching Station", res.Substation.StationType)
	assert.Equal(t, 2, res.Substation.Feeders)
	assert.InDelta(t, 500, res.Substation.LandSqm, 0.01)

	require.Len(t, res.LandItems, 2)
	assert.InDelta(t, 580, res.TotalLandSqm, 0.01)
	require.NotNil(t, res.Lease)
	assert.Equal(t, 30, res.Lease.Years)
}

func TestComplyBelowThresholds(t *testing.T) {
	totals := domain.AggregateTotals{GrandTCL: 80, GrandMaxDemand: 60}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{AreaType: "URBAN"}, 1)

	assert.False(t, res.DTC.Needed)
	assert.NotEmpty(t, res.DTC.Reason)
	assert.False(t, res.Substation.Needed)
	assert.NotEmpty(t, res.Substation.Reason)
	assert.Empty(t, res.LandItems)
	assert.Zero(t, res.TotalLandSqm)
	assert.Nil(t, res.Lease)
}

func TestComplyMetroSpecialRequirements(t *testing.T) {
	totals := domain.AggregateTotals{GrandTCL: 900, GrandMaxDemand: 540}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{AreaType: "METRO"}, 2)

	require.True(t, res.DTC.Needed)
	assert.NotEmpty(t, res.DTC.SpecialNotes)

	// metro DTCs drag the ring-main-unit land requirement along
	var rmu *domain.LandRequirement
	for i := range res.LandItems {
		if res.LandItems[i].InfraType == "RMU" {
			rmu = &res.LandItems[i]
		}
	}
	require.NotNil(t, rmu)
	assert.InDelta(t, 10, rmu.LandSqm, 0.01)
	assert.InDelta(t, 590, res.TotalLandSqm, 0.01) // 80 DTC + 500 substation + 10 RMU
}

func TestComplyUrbanHasNoAncillaryLand(t *testing.T) {
	totals := domain.AggregateTotals{GrandTCL: 900, GrandMaxDemand: 540}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{AreaType: "URBAN"}, 2)

	for _, item := range res.LandItems {
		assert.Contains(t, []string{"DTC", "SUBSTATION"}, item.InfraType)
	}
}

func TestComplyKeepsSnapshotWarningsOut(t *testing.T) {
	snap := testSnapshot()
	// force a fallback diagnostic onto the snapshot before complying
	snap.GetFactor(context.Background(), "LIGHTING", "", "No Such Row")
	require.NotEmpty(t, snap.Warnings())

	totals := domain.AggregateTotals{GrandTCL: 100, GrandMaxDemand: 60}
	res := Comply(context.Background(), snap, totals, dto.RegulatoryContext{}, 1)

	// snapshot diagnostics surface once at the result level, not here
	for _, w := range res.Warnings {
		assert.NotContains(t, w, "No Such Row")
	}
}

func TestComplyMinimumLoadFloor(t *testing.T) {
	// tiny connected load: the carpet-area floor must win
	totals := domain.AggregateTotals{GrandTCL: 10, GrandMaxDemand: 6}
	reg := dto.RegulatoryContext{PremiseType: "RESIDENTIAL", CarpetAreaSqm: 1000}

	res := Comply(context.Background(), testSnapshot(), totals, reg, 1)

	assert.InDelta(t, 65, res.MinimumLoadKW, 0.01) // 1000 sqm × 65 W/sqm
	assert.InDelta(t, 65, res.SanctionedKW, 0.01)
	assert.GreaterOrEqual(t, res.SanctionedKW, res.MinimumLoadKW)
	assert.InDelta(t, 68.42, res.SanctionedKVA, 0.01) // 65 / 0.95
}

func TestComplyCarpetAreaSqftConversion(t *testing.T) {
	totals := domain.AggregateTotals{GrandTCL: 10, GrandMaxDemand: 6}
	reg := dto.RegulatoryContext{PremiseType: "COMMERCIAL", CarpetAreaSqft: 10000}

	res := Comply(context.Background(), testSnapshot(), totals, reg, 1)

	// 10000 sqft = 929.03 sqm × 125 W/sqm
	assert.InDelta(t, 116.13, res.MinimumLoadKW, 0.01)
}

func TestComplySanctionedIgnoresDiversity(t *testing.T) {
	totals := domain.AggregateTotals{GrandTCL: 1000, GrandMaxDemand: 600}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{}, 1)

	assert.InDelta(t, 1000, res.SanctionedKW, 0.01)
	assert.InDelta(t, 600, res.AfterDiversityKW, 0.01)
	assert.NotEqual(t, res.SanctionedKVA, res.AfterDiversityKVA)
}

func TestComplyConsumerLimitWarnsOnly(t *testing.T) {
	// single consumer limit is 150 kW; exceeding it warns, never fails
	totals := domain.AggregateTotals{GrandTCL: 200, GrandMaxDemand: 120}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{}, 1)

	require.NotNil(t, res)
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "exceeds the SINGLE consumer limit") {
			found = true
		}
	}
	assert.True(t, found, "expected a consumer-limit warning, got %v", res.Warnings)
}

func TestComplyMultipleConsumerLimit(t *testing.T) {
	// the same 200 kW is well within the MULTIPLE limit of 3800 kW
	totals := domain.AggregateTotals{GrandTCL: 200, GrandMaxDemand: 120}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{}, 3)

	for _, w := range res.Warnings {
		assert.NotContains(t, w, "consumer limit")
	}
}

func TestComplyDefaultsAreaAndPremise(t *testing.T) {
	totals := domain.AggregateTotals{GrandTCL: 100, GrandMaxDemand: 60}

	res := Comply(context.Background(), testSnapshot(), totals, dto.RegulatoryContext{}, 1)

	assert.Equal(t, domain.AreaUrban, res.AreaType)
}
