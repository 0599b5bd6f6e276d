package regulation

import "github.com/voltplan/loadcalc/internal/domain"

// Built-in conservative defaults used when no framework is configured at all.
// They must always yield a usable result, never an error.

func fp(v float64) *float64 { return &v }

// builtinFactors is the fallback load-factor table. Watt densities are W/sqm.
func builtinFactors() []*domain.LoadFactor {
	return []*domain.LoadFactor{
		{Category: "LIGHTING", SubCategory: "default", Description: "Lobby & Small Power", WattPerSqm: fp(8), MDF: fp(0.9), EDF: fp(0.9), FDF: fp(0.1)},
		{Category: "LIGHTING", SubCategory: "default", Description: "Staircase Lighting", MDF: fp(0.9), EDF: fp(1.0), FDF: fp(1.0)},
		{Category: "LIGHTING", SubCategory: "default", Description: "Terrace Lighting", WattPerSqm: fp(3), MDF: fp(0.8), EDF: fp(0.5), FDF: fp(0)},
		{Category: "LIGHTING", SubCategory: "default", Description: "Landscape Lighting", WattPerSqm: fp(2), MDF: fp(0.8), EDF: fp(0), FDF: fp(0)},
		{Category: "LIFTS", SubCategory: "default", Description: "Passenger Lift", MDF: fp(0.7), EDF: fp(0.7), FDF: fp(0)},
		{Category: "LIFTS", SubCategory: "default", Description: "Passenger cum Fire Lift", MDF: fp(0.7), EDF: fp(1.0), FDF: fp(1.0)},
		{Category: "LIFTS", SubCategory: "default", Description: "Firemen Evacuation Lift", MDF: fp(0.5), EDF: fp(1.0), FDF: fp(1.0)},
		{Category: "HVAC", SubCategory: "default", Description: "HVAC Plant", MDF: fp(0.9), EDF: fp(0), FDF: fp(0)},
		{Category: "VENTILATION", SubCategory: "default", Description: "Pressurization Fans", MDF: fp(0.1), EDF: fp(1.0), FDF: fp(1.0)},
		{Category: "PHE", SubCategory: "default", Description: "PHE Pumps", MDF: fp(0.8), EDF: fp(0.8), FDF: fp(0)},
		{Category: "FIRE", SubCategory: "default", Description: "Sprinkler Pump", MDF: fp(0.1), EDF: fp(1.0), FDF: fp(0.25)},
		{Category: "FIRE", SubCategory: "default", Description: "Hydrant Pump", MDF: fp(0.1), EDF: fp(1.0), FDF: fp(0.25)},
		{Category: "FIRE", SubCategory: "default", Description: "Jockey Pump", MDF: fp(0.5), EDF: fp(1.0), FDF: fp(1.0)},
		{Category: "RESIDENTIAL", SubCategory: "default", Description: "Flat Load", WattPerSqm: fp(75), MDF: fp(0.6), EDF: fp(0.2), FDF: fp(0)},
		{Category: "SOCIETY", SubCategory: "FIRE", Description: "Fire Main Pump", MDF: fp(0.1), EDF: fp(1.0), FDF: fp(0.25)},
		{Category: "SOCIETY", SubCategory: "FIRE", Description: "Fire Jockey Pump", MDF: fp(0.5), EDF: fp(1.0), FDF: fp(1.0)},
		{Category: "SOCIETY", SubCategory: "FIRE", Description: "Sprinkler Pump", MDF: fp(0.1), EDF: fp(1.0), FDF: fp(0.25)},
		{Category: "SOCIETY", SubCategory: "default", Description: "Domestic Transfer Pump", MDF: fp(0.8), EDF: fp(0.8), FDF: fp(0)},
		{Category: "SOCIETY", SubCategory: "default", Description: "STP", MDF: fp(0.8), EDF: fp(0.5), FDF: fp(0)},
		{Category: "SOCIETY", SubCategory: "default", Description: "WTP", MDF: fp(0.8), EDF: fp(0.5), FDF: fp(0)},
		{Category: "SOCIETY", SubCategory: "default", Description: "Clubhouse", WattPerSqm: fp(25), MDF: fp(0.7), EDF: fp(0.3), FDF: fp(0)},
		{Category: "SOCIETY", SubCategory: "default", Description: "EV Charging", MDF: fp(0.5), EDF: fp(0), FDF: fp(0)},
		{Category: "SOCIETY", SubCategory: "default", Description: "Street Lighting", MDF: fp(0.9), EDF: fp(0.5), FDF: fp(0)},
	}
}

const builtinFrameworkID int64 = 0

func builtinTables() *tables {
	fw := &domain.Framework{ID: builtinFrameworkID, Code: "BUILTIN", Name: "Built-in defaults", IsDefault: true}
	return &tables{
		frameworks: []*domain.Framework{fw},
		loadStandards: []*domain.LoadStandard{
			{PremiseType: "RESIDENTIAL", MinWPerSqm: 65},
			{PremiseType: "COMMERCIAL", MinWPerSqm: 125},
			{PremiseType: "INDUSTRIAL", MinWPerSqm: 150},
		},
		dtcThresholds: []*domain.DTCThreshold{
			{AreaType: domain.AreaRural, ThresholdKVA: 25, UnitKVA: 500, BaseLandSqm: 50, IncrementLandSqm: 30},
			{AreaType: domain.AreaUrban, ThresholdKVA: 75, UnitKVA: 500, BaseLandSqm: 50, IncrementLandSqm: 30},
			{AreaType: domain.AreaMetro, ThresholdKVA: 150, UnitKVA: 500, BaseLandSqm: 50, IncrementLandSqm: 30},
			{AreaType: domain.AreaMajorCity, ThresholdKVA: 150, UnitKVA: 500, BaseLandSqm: 50, IncrementLandSqm: 30},
		},
		sanctionedLimits: []*domain.SanctionedLimit{
			{ConsumerKind: "SINGLE", LimitKW: 150, LimitKVA: 188},
			{ConsumerKind: "MULTIPLE", LimitKW: 3800, LimitKVA: 4000},
		},
		powerFactors: []*domain.PowerFactor{
			{LoadType: domain.LoadTypeSanctioned, Factor: 0.95},
			{LoadType: domain.LoadTypeAfterDF, Factor: 0.9},
			{LoadType: domain.LoadTypeTransformer, Factor: 0.9},
		},
		substationRules: []*domain.SubstationRule{
			{AreaType: domain.AreaWildcard, MinLoadMVA: 0.5, MaxLoadMVA: 3, StationType: "33/11kV Switching Station", Feeders: 2, LandSqm: 500},
			{AreaType: domain.AreaWildcard, MinLoadMVA: 3, MaxLoadMVA: 10, StationType: "33kV Substation", Feeders: 4, LandSqm: 1200},
			{AreaType: domain.AreaWildcard, MinLoadMVA: 10, MaxLoadMVA: 25, StationType: "132/33kV Substation", Feeders: 6, LandSqm: 4000},
		},
		landRequirements: []*domain.LandRequirement{
			{InfraType: "DTC", AreaType: domain.AreaWildcard, LandSqm: 50},
			{InfraType: "RMU", AreaType: domain.AreaMetro, LandSqm: 10},
			{InfraType: "RMU", AreaType: domain.AreaMajorCity, LandSqm: 10},
		},
		leaseTerms: []*domain.LeaseTerm{
			{Years: 30, RatePerSqm: 1, Description: "30-year nominal lease for handed-over utility land"},
		},
		infraSpecials: []*domain.InfraSpecial{
			{AreaType: domain.AreaMetro, Requirement: "individual transformer per consumer block"},
			{AreaType: domain.AreaMetro, Requirement: "ring-main unit on the HT loop"},
			{AreaType: domain.AreaMajorCity, Requirement: "individual transformer per consumer block"},
			{AreaType: domain.AreaMajorCity, Requirement: "ring-main unit on the HT loop"},
		},
	}
}
