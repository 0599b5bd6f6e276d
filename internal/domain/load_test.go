package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestApplyDemandFactors(t *testing.T) {
	cat := LoadCategory{
		Name: "Lifts",
		Items: []LoadItem{
			{Description: "Passenger Lift", TCL: 100, MDF: fp(0.7), EDF: fp(0.7), FDF: fp(0)},
			{Description: "Firemen Lift", TCL: 30, MDF: fp(0.5), EDF: fp(1), FDF: fp(1)},
		},
	}

	cat.ApplyDemandFactors()

	assert.Equal(t, 70.0, cat.Items[0].MaxDemandKW)
	assert.Equal(t, 0.0, cat.Items[0].FireKW)
	assert.Equal(t, 15.0, cat.Items[1].MaxDemandKW)
	assert.Equal(t, 30.0, cat.Items[1].FireKW)

	assert.Equal(t, 130.0, cat.TotalTCL)
	assert.Equal(t, 85.0, cat.TotalMaxDemand)
	assert.Equal(t, 100.0, cat.TotalEssential)
	assert.Equal(t, 30.0, cat.TotalFire)
}

func TestApplyDemandFactorsNilFallbacks(t *testing.T) {
	cat := LoadCategory{Items: []LoadItem{{Description: "Unclassified", TCL: 100}}}

	cat.ApplyDemandFactors()

	assert.Equal(t, FallbackMDF*100, cat.Items[0].MaxDemandKW)
	assert.Equal(t, FallbackEDF*100, cat.Items[0].EssentialKW)
	assert.Equal(t, 0.0, cat.Items[0].FireKW)
}

func TestApplyDemandFactorsIsIdempotent(t *testing.T) {
	cat := LoadCategory{Items: []LoadItem{{TCL: 100, MDF: fp(0.6), EDF: fp(0.2), FDF: fp(0)}}}

	cat.ApplyDemandFactors()
	first := cat
	cat.ApplyDemandFactors()

	assert.Equal(t, first.TotalMaxDemand, cat.TotalMaxDemand)
	assert.Equal(t, first.Items[0].MaxDemandKW, cat.Items[0].MaxDemandKW)
}

func TestRecomputeTotalsDoesNotRederive(t *testing.T) {
	// merged items carry pre-summed demand columns; recompute must trust them
	cat := LoadCategory{Items: []LoadItem{
		{TCL: 200, MDF: fp(0.6), MaxDemandKW: 120, EssentialKW: 40, FireKW: 0},
	}}

	cat.RecomputeTotals()

	assert.Equal(t, 120.0, cat.TotalMaxDemand)
	assert.Equal(t, 40.0, cat.TotalEssential)
}

func TestBuildingBreakdownRecompute(t *testing.T) {
	flat := LoadCategory{Items: []LoadItem{{TCL: 348.4, MDF: fp(0.6), EDF: fp(0.2), FDF: fp(0)}}}
	flat.ApplyDemandFactors()

	cat := LoadCategory{Items: []LoadItem{{TCL: 50, MDF: fp(0.9), EDF: fp(0.9), FDF: fp(0.1)}}}
	cat.ApplyDemandFactors()

	b := BuildingBreakdown{Categories: []LoadCategory{cat}, FlatLoads: &flat}
	b.Recompute()

	assert.InDelta(t, 398.4, b.TotalTCL, 0.001)
	assert.InDelta(t, cat.TotalMaxDemand+flat.TotalMaxDemand, b.TotalMaxDemand, 0.001)
}

func TestNewFactorKeyNormalizesSubCategory(t *testing.T) {
	key := NewFactorKey("LIGHTING", "", "Lobby")
	assert.Equal(t, SubCategoryDefault, key.SubCategory)

	f := &LoadFactor{Category: "LIGHTING", SubCategory: "default", Description: "Lobby"}
	assert.Equal(t, key, f.Key())
}

func TestDefaultLoadFactorShape(t *testing.T) {
	f := DefaultLoadFactor(NewFactorKey("HVAC", "", "Plant"))

	assert.Nil(t, f.WattPerSqm)
	require.NotNil(t, f.MDF)
	assert.Equal(t, 0.5, *f.MDF)
	require.NotNil(t, f.FDF)
	assert.Equal(t, 0.0, *f.FDF)
}
