package electrical

import (
	"context"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

// CalcLighting produces the lighting & small power schedule for one building.
func CalcLighting(ctx context.Context, in *dto.ElectricalInputs, floors int, snap *regulation.Snapshot) domain.LoadCategory {
	cat := domain.LoadCategory{Name: CategoryLighting}

	lobbyFactor := snap.GetFactor(ctx, "LIGHTING", "", "Lobby & Small Power")
	lobbyWPerSqm := in.LobbyWattPerSqm
	if lobbyWPerSqm == 0 {
		if lobbyFactor.WattPerSqm != nil {
			lobbyWPerSqm = *lobbyFactor.WattPerSqm
		} else {
			lobbyWPerSqm = DefaultLobbyWattPerSqm
		}
	}

	if in.GroundLobbyAreaSqm > 0 {
		tcl := in.GroundLobbyAreaSqm * lobbyWPerSqm / 1000.0
		cat.Items = append(cat.Items, newItem("Ground Floor Lobby", 1, tcl, tcl, lobbyFactor))
	}

	if in.TypicalLobbyAreaSqm > 0 && floors > 0 {
		perFloor := in.TypicalLobbyAreaSqm * lobbyWPerSqm / 1000.0
		tcl := perFloor * float64(floors)
		cat.Items = append(cat.Items, newItem("Typical Floor Lobbies", float64(floors), perFloor, tcl, lobbyFactor))
	}

	if floors > 0 {
		fixtureW := in.StaircaseFixtureW
		if fixtureW == 0 {
			fixtureW = DefaultStaircaseFixtureW
		}
		fixtures := float64(floors * StairwellsPerFloor * LandingsPerFloor)
		tcl := fixtures * fixtureW / 1000.0
		cat.Items = append(cat.Items,
			newItem("Staircase Lighting", fixtures, fixtureW/1000.0, tcl,
				snap.GetFactor(ctx, "LIGHTING", "", "Staircase Lighting")))
	}

	if in.TerraceLighting && in.TerraceAreaSqm > 0 {
		f := snap.GetFactor(ctx, "LIGHTING", "", "Terrace Lighting")
		wPerSqm := DefaultTerraceWattPerSqm
		if f.WattPerSqm != nil {
			wPerSqm = *f.WattPerSqm
		}
		tcl := in.TerraceAreaSqm * wPerSqm / 1000.0
		cat.Items = append(cat.Items, newItem("Terrace Lighting", 1, tcl, tcl, f))
	}

	if in.LandscapeLighting && in.LandscapeAreaSqm > 0 {
		f := snap.GetFactor(ctx, "LIGHTING", "", "Landscape Lighting")
		wPerSqm := DefaultLandscapeWattPerSqm
		if f.WattPerSqm != nil {
			wPerSqm = *f.WattPerSqm
		}
		tcl := in.LandscapeAreaSqm * wPerSqm / 1000.0
		cat.Items = append(cat.Items, newItem("Landscape Lighting", 1, tcl, tcl, f))
	}

	cat.ApplyDemandFactors()
	return cat
}
