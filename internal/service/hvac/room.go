package hvac

import (
	"github.com/shopspring/decimal"

	"github.com/voltplan/loadcalc/internal/domain"
)

const (
	// sol-air allowance added to ΔT for sun-struck roofs
	roofSolAirDeltaC = 10.0
	// ground-coupled floors see a damped temperature difference
	floorDeltaTFraction = 0.3
	// sensible load per L/s of air per kelvin
	airSensibleWPerLpsK = 1.23
	// RH-differential proxy coefficient for ventilation latent load
	ventLatentWPerLpsRH = 0.36
	// fixed supply/return temperature difference for airflow sizing
	supplyDeltaTC = 12.0
	// CFM per L/s
	cfmPerLps = 2.119

	shadedSolarFraction = 0.5

	ventLatentNote = "ventilation latent load uses an RH-differential proxy, not full psychrometrics"
)

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// CalcRoom computes the heat-gain breakdown for one room against the given
// outdoor design condition and season.
func CalcRoom(room domain.Room, design domain.DesignCondition, season domain.Season) domain.RoomResult {
	p := profileFor(room.SpaceType)
	deltaT := design.DryBulb(season) - p.IndoorDBC

	res := domain.RoomResult{Name: room.Name}

	// transmission
	if room.WallAreaSqm > 0 {
		res.WallTransmissionW = round1(uValue(wallU, room.WallType, "brick230") * room.WallAreaSqm * deltaT)
	}
	if room.ExposedRoof && room.AreaSqm > 0 {
		res.RoofTransmissionW = round1(uValue(roofU, room.RoofType, "rcc150") * room.AreaSqm * (deltaT + roofSolAirDeltaC))
	}
	if room.ExposedFloor && room.AreaSqm > 0 {
		res.FloorTransmissionW = round1(uValue(floorU, room.FloorType, "slab") * room.AreaSqm * floorDeltaTFraction * deltaT)
	}

	// glass: conduction plus solar
	if room.GlassAreaSqm > 0 {
		g := glassFor(room.GlassType)
		res.GlassTransmissionW = round1(g.U * room.GlassAreaSqm * deltaT)

		shading := 1.0
		if room.Shaded {
			shading = shadedSolarFraction
		}
		res.GlassSolarW = round1(solarFor(season, room.Orientation) * room.GlassAreaSqm * g.SC * shading)
	}

	// internal gains
	occ := float64(room.Occupancy)
	res.OccupancySensibleW = round1(occ * p.OccSensibleW)
	res.OccupancyLatentW = round1(occ * p.OccLatentW)

	lighting := p.LightingWPerSqm
	if room.LightingWPerSqm != nil {
		lighting = *room.LightingWPerSqm
	}
	res.LightingW = round1(lighting * room.AreaSqm)

	equipment := p.EquipmentWPerSqm
	if room.EquipmentWPerSqm != nil {
		equipment = *room.EquipmentWPerSqm
	}
	res.EquipmentW = round1(equipment * room.AreaSqm)

	// ventilation: zero occupancy means zero fresh air and zero vent load
	res.FreshAirLps = round1(p.FreshAirLpsPerPerson * occ)
	res.VentilationSensibleW = round1(airSensibleWPerLpsK * res.FreshAirLps * deltaT)
	rhDiff := design.OutdoorRHPct - p.IndoorRHPct
	if rhDiff < 0 {
		rhDiff = 0
	}
	res.VentilationLatentW = round1(ventLatentWPerLpsRH * res.FreshAirLps * rhDiff)

	res.SensibleW = round1(res.WallTransmissionW + res.RoofTransmissionW + res.FloorTransmissionW +
		res.GlassTransmissionW + res.GlassSolarW +
		res.OccupancySensibleW + res.LightingW + res.EquipmentW +
		res.VentilationSensibleW)
	res.LatentW = round1(res.OccupancyLatentW + res.VentilationLatentW)
	res.TotalW = round1(res.SensibleW + res.LatentW)
	res.TotalTR = decimal.NewFromFloat(res.TotalW / domain.WattsPerTR).Round(3).InexactFloat64()

	if res.TotalW != 0 {
		res.SensibleHeatRatio = decimal.NewFromFloat(res.SensibleW / res.TotalW).Round(3).InexactFloat64()
	}

	supplyLps := res.SensibleW / (airSensibleWPerLpsK * supplyDeltaTC)
	if supplyLps < 0 {
		supplyLps = 0
	}
	res.SupplyAirflowCFM = round1(supplyLps * cfmPerLps)

	res.Approximate = append(res.Approximate, ventLatentNote)

	return res
}
