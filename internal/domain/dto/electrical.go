package dto

// FlatTypeInput describes one residential flat type. AreaSqft is converted to
// sqm inside the calculator; WattPerSqm 0 means "use the factor table".
type FlatTypeInput struct {
	FlatType   string  `json:"flat_type" validate:"required"`
	Count      int     `json:"count" validate:"gte=0"`
	AreaSqft   float64 `json:"area_sqft" validate:"gte=0"`
	WattPerSqm float64 `json:"watt_per_sqm,omitempty"`
}

// BuildingInput is per-building metadata for multi-building projects. Only
// geometry that differs between towers lives here; the shared equipment
// configuration stays in ElectricalInputs.
type BuildingInput struct {
	ID               string          `json:"id" validate:"required"`
	Name             string          `json:"name"`
	HeightM          float64         `json:"height_m"`
	Floors           int             `json:"floors"`
	TwinOfBuildingID string          `json:"twin_of_building_id,omitempty"`
	Flats            []FlatTypeInput `json:"flats,omitempty"`
}

// ElectricalInputs is the flat configuration object for one electrical run.
// The three pointer fields are required geometry; everything else is optional
// and degrades to the named default noted inline.
type ElectricalInputs struct {
	// required geometry
	BuildingHeightM *float64 `json:"building_height_m"`
	NumberOfFloors  *int     `json:"number_of_floors"`
	PassengerLifts  *int     `json:"passenger_lifts"`

	// lifts (default 0 units)
	FirePassengerLifts int `json:"fire_passenger_lifts,omitempty"`
	FiremenLifts       int `json:"firemen_lifts,omitempty"`

	// lighting (areas default 0 sqm, densities default to the factor table)
	GroundLobbyAreaSqm  float64 `json:"ground_lobby_area_sqm,omitempty"`
	TypicalLobbyAreaSqm float64 `json:"typical_lobby_area_sqm,omitempty"`
	LobbyWattPerSqm     float64 `json:"lobby_watt_per_sqm,omitempty"`
	StaircaseFixtureW   float64 `json:"staircase_fixture_w,omitempty"` // default 18 W
	TerraceLighting     bool    `json:"terrace_lighting,omitempty"`
	TerraceAreaSqm      float64 `json:"terrace_area_sqm,omitempty"`
	LandscapeLighting   bool    `json:"landscape_lighting,omitempty"`
	LandscapeAreaSqm    float64 `json:"landscape_area_sqm,omitempty"`

	// hvac electrical (config default "1W")
	HVACTonnageTR float64 `json:"hvac_tonnage_tr,omitempty"`
	HVACConfig    string  `json:"hvac_config,omitempty"`

	// staircase/lobby pressurization (config default "1W")
	PressurizationCFM    float64 `json:"pressurization_cfm,omitempty"`
	PressurizationConfig string  `json:"pressurization_config,omitempty"`

	// public health engineering pumps (config default "1W+1S")
	PHEFlowLPM float64 `json:"phe_flow_lpm,omitempty"`
	PHEConfig  string  `json:"phe_config,omitempty"`

	// building fire fighting (config default "1W+1S")
	SprinklerPumpLPM float64 `json:"sprinkler_pump_lpm,omitempty"`
	HydrantPumpLPM   float64 `json:"hydrant_pump_lpm,omitempty"`
	JockeyPumpKW     float64 `json:"jockey_pump_kw,omitempty"`
	FirePumpConfig   string  `json:"fire_pump_config,omitempty"`

	// residential flats
	Flats []FlatTypeInput `json:"flats,omitempty"`

	// society-level loads, each included only when its trigger is non-zero
	SocietyFireMainPumpKW   float64 `json:"society_fire_main_pump_kw,omitempty"`
	SocietyFireJockeyPumpKW float64 `json:"society_fire_jockey_pump_kw,omitempty"`
	SocietySprinklerPumpKW  float64 `json:"society_sprinkler_pump_kw,omitempty"`
	DomesticTransferPumpKW  float64 `json:"domestic_transfer_pump_kw,omitempty"`
	DomesticTransferConfig  string  `json:"domestic_transfer_config,omitempty"` // default "1W+1S"
	STPCapacityKLD          float64 `json:"stp_capacity_kld,omitempty"`
	WTPCapacityKLD          float64 `json:"wtp_capacity_kld,omitempty"`
	ClubhouseAreaSqm        float64 `json:"clubhouse_area_sqm,omitempty"`
	EVChargers              int     `json:"ev_chargers,omitempty"`
	EVChargerKW             float64 `json:"ev_charger_kw,omitempty"` // default 7.4 kW
	StreetLightPoles        int     `json:"street_light_poles,omitempty"`
	StreetLightW            float64 `json:"street_light_w,omitempty"` // default 70 W

	// multi-building
	NumberOfBuildings int             `json:"number_of_buildings,omitempty"` // default 1
	Buildings         []BuildingInput `json:"buildings,omitempty"`
}

// RegulatoryContext selects the rule set and compliance inputs for a run.
type RegulatoryContext struct {
	ProjectID      int64    `json:"project_id,omitempty"`
	FrameworkCodes []string `json:"framework_codes,omitempty"`
	AreaType       string   `json:"area_type,omitempty"`       // default URBAN
	PremiseType    string   `json:"premise_type,omitempty"`    // default RESIDENTIAL
	CarpetAreaSqm  float64  `json:"carpet_area_sqm,omitempty"`
	CarpetAreaSqft float64  `json:"carpet_area_sqft,omitempty"`
}

// ElectricalRequest is the api body for POST /calc/electrical.
type ElectricalRequest struct {
	Inputs     ElectricalInputs  `json:"inputs"`
	Regulatory RegulatoryContext `json:"regulatory"`
}
