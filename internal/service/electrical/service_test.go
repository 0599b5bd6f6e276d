package electrical

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

func fv(v float64) *float64 { return &v }
func iv(v int) *int         { return &v }

func testService() *Service {
	return NewService(regulation.NewProvider(nil))
}

func testInputs() *dto.ElectricalInputs {
	return &dto.ElectricalInputs{
		BuildingHeightM: fv(120),
		NumberOfFloors:  iv(38),
		PassengerLifts:  iv(4),

		FirePassengerLifts:  1,
		FiremenLifts:        1,
		GroundLobbyAreaSqm:  120,
		TypicalLobbyAreaSqm: 30,
		TerraceLighting:     true,
		TerraceAreaSqm:      400,

		HVACTonnageTR:        90,
		HVACConfig:           "2W",
		PressurizationCFM:    24000,
		PressurizationConfig: "2W+1S",
		PHEFlowLPM:           900,
		SprinklerPumpLPM:     2850,
		HydrantPumpLPM:       2850,
		JockeyPumpKW:         7.5,
		FirePumpConfig:       "1W+1S",

		Flats: []dto.FlatTypeInput{
			{FlatType: "2BHK", Count: 76, AreaSqft: 850},
			{FlatType: "3BHK", Count: 38, AreaSqft: 1250},
		},

		SocietyFireMainPumpKW:  110,
		DomesticTransferPumpKW: 15,
		STPCapacityKLD:         200,
		EVChargers:             12,
		StreetLightPoles:       40,
	}
}

func TestCalculateMissingRequiredField(t *testing.T) {
	svc := testService()

	cases := []struct {
		mutate func(*dto.ElectricalInputs)
		field  string
	}{
		{func(in *dto.ElectricalInputs) { in.BuildingHeightM = nil }, "buildingHeight"},
		{func(in *dto.ElectricalInputs) { in.NumberOfFloors = nil }, "numberOfFloors"},
		{func(in *dto.ElectricalInputs) { in.PassengerLifts = nil }, "passengerLifts"},
	}

	for _, tc := range cases {
		in := testInputs()
		tc.mutate(in)

		res, err := svc.Calculate(context.Background(), in, dto.RegulatoryContext{})
		require.Error(t, err, tc.field)
		assert.Nil(t, res, "no partial result on validation error")

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, tc.field, ve.Field)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	svc := testService()
	reg := dto.RegulatoryContext{AreaType: "URBAN", PremiseType: "RESIDENTIAL", CarpetAreaSqm: 38000}

	first, err := svc.Calculate(context.Background(), testInputs(), reg)
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), testInputs(), reg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCategoryTotalsAreItemSums(t *testing.T) {
	svc := testService()

	res, err := svc.Calculate(context.Background(), testInputs(), dto.RegulatoryContext{})
	require.NoError(t, err)

	categories := append([]domain.LoadCategory{}, res.BuildingCALoads...)
	categories = append(categories, res.SocietyCALoads...)
	if res.FlatLoads != nil {
		categories = append(categories, *res.FlatLoads)
	}

	for _, cat := range categories {
		var tcl, md, ess, fire float64
		for _, item := range cat.Items {
			tcl += item.TCL
			md += item.MaxDemandKW
			ess += item.EssentialKW
			fire += item.FireKW
		}
		assert.InDelta(t, tcl, cat.TotalTCL, 0.001, "%s TCL", cat.Name)
		assert.InDelta(t, md, cat.TotalMaxDemand, 0.001, "%s max demand", cat.Name)
		assert.InDelta(t, ess, cat.TotalEssential, 0.001, "%s essential", cat.Name)
		assert.InDelta(t, fire, cat.TotalFire, 0.001, "%s fire", cat.Name)
	}
}

func TestFlatLoadExample(t *testing.T) {
	snap := regulation.NewProvider(nil).Snapshot(0, nil)

	cat := CalcFlats(context.Background(), []dto.FlatTypeInput{
		{FlatType: "3BHK", Count: 50, AreaSqft: 1000, WattPerSqm: 75},
	}, snap)

	require.Len(t, cat.Items, 1)
	// 1000 sqft = 92.903 sqm; 92.903 × 75 / 1000 = 6.968 kW per flat
	assert.InDelta(t, 6.968, cat.Items[0].UnitLoadKW, 0.0005)
	assert.InDelta(t, 348.4, cat.Items[0].TCL, 0.001)
	assert.InDelta(t, 348.4, cat.TotalTCL, 0.001)
}

func TestTypicalLobbyExample(t *testing.T) {
	snap := regulation.NewProvider(nil).Snapshot(0, nil)
	in := testInputs()
	in.LobbyWattPerSqm = 8

	cat := CalcLighting(context.Background(), in, 38, snap)

	var lobby *domain.LoadItem
	for i := range cat.Items {
		if cat.Items[i].Description == "Typical Floor Lobbies" {
			lobby = &cat.Items[i]
		}
	}
	require.NotNil(t, lobby)
	// 8 W/sqm × 30 sqm × 38 floors / 1000
	assert.InDelta(t, 9.12, lobby.TCL, 0.001)
	assert.Equal(t, float64(38), lobby.Nos)
}

func TestStaircaseLightingGeometry(t *testing.T) {
	snap := regulation.NewProvider(nil).Snapshot(0, nil)
	in := &dto.ElectricalInputs{BuildingHeightM: fv(30), NumberOfFloors: iv(10), PassengerLifts: iv(2)}

	cat := CalcLighting(context.Background(), in, 10, snap)

	require.Len(t, cat.Items, 1)
	// 10 floors × 2 stairwells × 2 landings = 40 fixtures at 18 W
	assert.Equal(t, float64(40), cat.Items[0].Nos)
	assert.InDelta(t, 0.72, cat.Items[0].TCL, 0.001)
}
