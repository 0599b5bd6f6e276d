package domain

// TR is one ton of refrigeration in watts.
const WattsPerTR = 3517.0

// Season selects the outdoor design condition column.
type Season string

const (
	SeasonSummer  Season = "summer"
	SeasonMonsoon Season = "monsoon"
	SeasonWinter  Season = "winter"
)

// DesignCondition is the outdoor design state for one city. CSV-overridable
// via gocsv, hence the csv tags.
type DesignCondition struct {
	City         string  `csv:"city" json:"city"`
	SummerDBC    float64 `csv:"summer_db_c" json:"summer_db_c"`
	SummerWBC    float64 `csv:"summer_wb_c" json:"summer_wb_c"`
	MonsoonDBC   float64 `csv:"monsoon_db_c" json:"monsoon_db_c"`
	WinterDBC    float64 `csv:"winter_db_c" json:"winter_db_c"`
	OutdoorRHPct float64 `csv:"outdoor_rh_pct" json:"outdoor_rh_pct"`
}

// DryBulb returns the outdoor dry bulb for the season.
func (d DesignCondition) DryBulb(season Season) float64 {
	switch season {
	case SeasonMonsoon:
		return d.MonsoonDBC
	case SeasonWinter:
		return d.WinterDBC
	default:
		return d.SummerDBC
	}
}

// Room is the HVAC calculation input for one conditioned space.
type Room struct {
	Name      string  `json:"name"`
	SpaceType string  `json:"space_type"`
	AreaSqm   float64 `json:"area_sqm"`
	HeightM   float64 `json:"height_m"`
	Occupancy int     `json:"occupancy"`

	WallAreaSqm  float64 `json:"wall_area_sqm"`
	WallType     string  `json:"wall_type,omitempty"`
	GlassAreaSqm float64 `json:"glass_area_sqm"`
	GlassType    string  `json:"glass_type,omitempty"`
	Orientation  string  `json:"orientation,omitempty"`
	Shaded       bool    `json:"shaded,omitempty"`
	ExposedRoof  bool    `json:"exposed_roof,omitempty"`
	RoofType     string  `json:"roof_type,omitempty"`
	ExposedFloor bool    `json:"exposed_floor,omitempty"`
	FloorType    string  `json:"floor_type,omitempty"`

	// Optional overrides for the space-type power densities, W/sqm.
	LightingWPerSqm  *float64 `json:"lighting_w_per_sqm,omitempty"`
	EquipmentWPerSqm *float64 `json:"equipment_w_per_sqm,omitempty"`
}

// RoomResult is the computed heat-gain breakdown for one room, all in watts.
type RoomResult struct {
	Name string `json:"name"`

	WallTransmissionW  float64 `json:"wall_transmission_w"`
	RoofTransmissionW  float64 `json:"roof_transmission_w"`
	FloorTransmissionW float64 `json:"floor_transmission_w"`
	GlassTransmissionW float64 `json:"glass_transmission_w"`
	GlassSolarW        float64 `json:"glass_solar_w"`

	OccupancySensibleW float64 `json:"occupancy_sensible_w"`
	OccupancyLatentW   float64 `json:"occupancy_latent_w"`
	LightingW          float64 `json:"lighting_w"`
	EquipmentW         float64 `json:"equipment_w"`

	VentilationSensibleW float64 `json:"ventilation_sensible_w"`
	VentilationLatentW   float64 `json:"ventilation_latent_w"`

	SensibleW          float64 `json:"sensible_w"`
	LatentW            float64 `json:"latent_w"`
	TotalW             float64 `json:"total_w"`
	TotalTR            float64 `json:"total_tr"`
	SensibleHeatRatio  float64 `json:"sensible_heat_ratio"`
	SupplyAirflowCFM   float64 `json:"supply_airflow_cfm"`
	FreshAirLps        float64 `json:"fresh_air_lps"`

	// Approximate notes where a simplified model stands in for the rigorous
	// one, e.g. the RH-proxy latent ventilation load.
	Approximate []string `json:"approximate,omitempty"`
}

// HVACSummary aggregates the room results to plant level.
type HVACSummary struct {
	TotalSensibleW float64 `json:"total_sensible_w"`
	TotalLatentW   float64 `json:"total_latent_w"`
	TotalW         float64 `json:"total_w"`
	TotalTR        float64 `json:"total_tr"`
	DesignTR       float64 `json:"design_tr"`
	DiversifiedTR  float64 `json:"diversified_tr"`
	TotalCFM       float64 `json:"total_cfm"`
}

// ChillerSizing is the selected chiller plant arrangement.
type ChillerSizing struct {
	Configuration string  `json:"configuration"` // e.g. "2W+1S"
	WorkingUnits  int     `json:"working_units"`
	StandbyUnits  int     `json:"standby_units"`
	UnitTR        float64 `json:"unit_tr"`
	InstalledTR   float64 `json:"installed_tr"`
	ChillerClass  string  `json:"chiller_class"`
	KWPerTR       float64 `json:"kw_per_tr"`
	TotalPowerKW  float64 `json:"total_power_kw"`
}

// AHUSizing is the air-handling arrangement.
type AHUSizing struct {
	Units      int     `json:"units"`
	UnitCFM    float64 `json:"unit_cfm"`
	TotalCFM   float64 `json:"total_cfm"`
	FanPowerKW float64 `json:"fan_power_kw"`
}

// CoolingTowerSizing is the condenser-side arrangement.
type CoolingTowerSizing struct {
	CapacityTR   float64 `json:"capacity_tr"`
	WaterFlowGPM float64 `json:"water_flow_gpm"`
	FanPowerKW   float64 `json:"fan_power_kw"`
}
