package electrical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
)

func sampleCategory() domain.LoadCategory {
	cat := domain.LoadCategory{
		Name: CategoryLifts,
		Items: []domain.LoadItem{
			{Description: "Passenger Lift", Nos: 2, UnitLoadKW: 22, TCL: 44, MDF: fv(0.7), EDF: fv(0.7), FDF: fv(0)},
			{Description: "Firemen Evacuation Lift", Nos: 1, UnitLoadKW: 22, TCL: 22, MDF: fv(0.5), EDF: fv(1), FDF: fv(1)},
		},
	}
	cat.ApplyDemandFactors()
	return cat
}

func TestMergeCategoriesAddsItemwise(t *testing.T) {
	a := sampleCategory()
	b := sampleCategory()

	merged := MergeCategories(nil, []domain.LoadCategory{a})
	merged = MergeCategories(merged, []domain.LoadCategory{b})

	require.Len(t, merged, 1)
	require.Len(t, merged[0].Items, 2)

	passenger := merged[0].Items[0]
	assert.Equal(t, float64(4), passenger.Nos)
	assert.InDelta(t, 88, passenger.TCL, 0.001)
	assert.InDelta(t, a.Items[0].MaxDemandKW*2, passenger.MaxDemandKW, 0.001)
	// unit rate keeps the first value, never re-averaged
	assert.Equal(t, float64(22), passenger.UnitLoadKW)

	assert.InDelta(t, a.TotalTCL*2, merged[0].TotalTCL, 0.001)
	assert.InDelta(t, a.TotalMaxDemand*2, merged[0].TotalMaxDemand, 0.001)
	assert.InDelta(t, a.TotalFire*2, merged[0].TotalFire, 0.001)
}

func TestMergeCategoriesDisjointNames(t *testing.T) {
	a := sampleCategory()
	b := sampleCategory()
	b.Name = CategoryHVAC

	merged := MergeCategories(nil, []domain.LoadCategory{a, b})

	require.Len(t, merged, 2)
	assert.InDelta(t, a.TotalTCL, merged[0].TotalTCL, 0.001)
	assert.InDelta(t, b.TotalTCL, merged[1].TotalTCL, 0.001)
}

func TestEstimateTransformerKVA(t *testing.T) {
	cases := []struct {
		maxDemandKW float64
		want        float64
	}{
		{0, 0},
		{-5, 0},
		{45, 100},   // 50 kVA rounds up to 100
		{90, 100},   // exactly 100 kVA
		{450, 500},  // 500 kVA
		{451, 600},  // 501.1 kVA rounds up
		{900, 1000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.EstimateTransformerKVA(tc.maxDemandKW), "%.0f kW", tc.maxDemandKW)
	}
}

func TestAggregateGrandTotals(t *testing.T) {
	b := domain.BuildingBreakdown{Categories: []domain.LoadCategory{sampleCategory()}}
	b.Recompute()

	society := []domain.LoadCategory{sampleCategory()}
	society[0].Name = CategorySocietyInfra

	totals := Aggregate([]domain.BuildingBreakdown{b, b}, society)

	assert.InDelta(t, b.TotalTCL*2, totals.BuildingTCL, 0.001)
	assert.InDelta(t, society[0].TotalTCL, totals.SocietyTCL, 0.001)
	assert.InDelta(t, totals.BuildingTCL+totals.SocietyTCL, totals.GrandTCL, 0.001)
	assert.InDelta(t, totals.BuildingMaxDemand+totals.SocietyMaxDemand, totals.GrandMaxDemand, 0.001)
	assert.Equal(t, domain.EstimateTransformerKVA(totals.GrandMaxDemand), totals.TransformerKVA)
}

func TestTwinBuildingsShareSchedules(t *testing.T) {
	svc := testService()
	in := testInputs()
	in.Buildings = []dto.BuildingInput{
		{ID: "A", Name: "Tower A", HeightM: 120, Floors: 38},
		{ID: "B", Name: "Tower B", TwinOfBuildingID: "A"},
	}

	res, err := svc.Calculate(context.Background(), in, dto.RegulatoryContext{})
	require.NoError(t, err)
	require.Len(t, res.BuildingBreakdowns, 2)

	a, b := res.BuildingBreakdowns[0], res.BuildingBreakdowns[1]
	assert.Equal(t, "A", a.BuildingID)
	assert.Equal(t, "B", b.BuildingID)
	assert.Equal(t, "A", b.TwinOfBuildingID)
	assert.Equal(t, a.TotalTCL, b.TotalTCL)
	assert.Equal(t, a.TotalMaxDemand, b.TotalMaxDemand)
	assert.False(t, res.Totals.RepresentativeMultiplied)
	assert.InDelta(t, a.TotalTCL*2, res.Totals.BuildingTCL, 0.001)
}

func TestUnknownTwinReferenceFailsValidation(t *testing.T) {
	svc := testService()
	in := testInputs()
	in.Buildings = []dto.BuildingInput{
		{ID: "A", HeightM: 120, Floors: 38},
		{ID: "B", TwinOfBuildingID: "Z"},
	}

	res, err := svc.Calculate(context.Background(), in, dto.RegulatoryContext{})
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestRepresentativeMultipliedIsExplicit(t *testing.T) {
	svc := testService()

	single, err := svc.Calculate(context.Background(), testInputs(), dto.RegulatoryContext{})
	require.NoError(t, err)

	in := testInputs()
	in.NumberOfBuildings = 3
	multi, err := svc.Calculate(context.Background(), in, dto.RegulatoryContext{})
	require.NoError(t, err)

	require.Len(t, multi.BuildingBreakdowns, 3)
	assert.True(t, multi.Totals.RepresentativeMultiplied)
	assert.NotEmpty(t, multi.Totals.Warnings)
	assert.InDelta(t, single.Totals.BuildingTCL*3, multi.Totals.BuildingTCL, 0.001)
	// society loads are project-level and must not be multiplied
	assert.InDelta(t, single.Totals.SocietyTCL, multi.Totals.SocietyTCL, 0.001)
}
