package electrical

// Unit-power constants and lookup bands for the category calculators. These
// are baseline engineering values; the demand factors applied on top of them
// come from the regulation snapshot.
const (
	SqftToSqm = 0.092903

	DefaultLobbyWattPerSqm     = 8.0
	DefaultTerraceWattPerSqm   = 3.0
	DefaultLandscapeWattPerSqm = 2.0
	DefaultFlatWattPerSqm      = 75.0
	DefaultStaircaseFixtureW   = 18.0

	// staircase lighting geometry: fixtures = floors × stairwells × landings
	StairwellsPerFloor = 2
	LandingsPerFloor   = 2

	HVACKWPerTR            = 1.2
	PressurizationKWPerCFM = 0.00065
	PHEPumpKWPerLPM        = 0.015
	FirePumpKWPerLPM       = 0.02
	DefaultJockeyPumpKW    = 5.0

	STPKWPerKLD = 0.35
	WTPKWPerKLD = 0.25

	DefaultEVChargerKW  = 7.4
	DefaultStreetLightW = 70.0
	ClubhouseWattPerSqm = 25.0
)

// Category names as they appear on the load schedule.
const (
	CategoryLighting       = "Lighting & Small Power"
	CategoryLifts          = "Lifts"
	CategoryHVAC           = "HVAC Electrical"
	CategoryPressurization = "Pressurization & Ventilation"
	CategoryPHE            = "PHE Pumps"
	CategoryFire           = "Fire Fighting"
	CategoryFlats          = "Residential Flats"
	CategorySocietyFire    = "Society Fire Fighting"
	CategorySocietyInfra   = "Society Infrastructure"
)

// liftBand maps building height to per-lift motor rating.
type liftBand struct {
	MaxHeightM float64
	KW         float64
}

var liftBands = []liftBand{
	{15, 7.5},
	{30, 11},
	{45, 15},
	{60, 18.5},
	{90, 22},
	{120, 30},
}

// liftKWAbove is used past the last band.
const liftKWAbove = 37.5

// liftUnitKW looks up the per-lift power for a building height.
func liftUnitKW(heightM float64) float64 {
	for _, b := range liftBands {
		if heightM <= b.MaxHeightM {
			return b.KW
		}
	}
	return liftKWAbove
}
