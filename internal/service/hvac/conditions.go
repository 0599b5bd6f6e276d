package hvac

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/voltplan/loadcalc/internal/domain"
)

// DefaultCity is used when params name no city.
const DefaultCity = "mumbai"

// defaultDesignConditions are outdoor design states for the covered cities.
// A CSV file can replace the whole table at startup.
func defaultDesignConditions() map[string]domain.DesignCondition {
	list := []domain.DesignCondition{
		{City: "mumbai", SummerDBC: 35.0, SummerWBC: 28.0, MonsoonDBC: 30.5, WinterDBC: 25.0, OutdoorRHPct: 75},
		{City: "delhi", SummerDBC: 43.5, SummerWBC: 24.0, MonsoonDBC: 35.0, WinterDBC: 14.0, OutdoorRHPct: 55},
		{City: "bangalore", SummerDBC: 34.0, SummerWBC: 21.5, MonsoonDBC: 28.0, WinterDBC: 22.0, OutdoorRHPct: 60},
		{City: "chennai", SummerDBC: 38.5, SummerWBC: 28.5, MonsoonDBC: 34.0, WinterDBC: 27.0, OutdoorRHPct: 70},
		{City: "hyderabad", SummerDBC: 40.0, SummerWBC: 24.0, MonsoonDBC: 31.0, WinterDBC: 22.0, OutdoorRHPct: 55},
		{City: "pune", SummerDBC: 38.0, SummerWBC: 23.0, MonsoonDBC: 29.0, WinterDBC: 22.0, OutdoorRHPct: 60},
		{City: "kolkata", SummerDBC: 37.5, SummerWBC: 28.0, MonsoonDBC: 33.0, WinterDBC: 20.0, OutdoorRHPct: 75},
		{City: "ahmedabad", SummerDBC: 42.5, SummerWBC: 25.5, MonsoonDBC: 34.0, WinterDBC: 20.0, OutdoorRHPct: 50},
	}

	m := make(map[string]domain.DesignCondition, len(list))
	for _, c := range list {
		m[c.City] = c
	}
	return m
}

// loadDesignConditionsCSV reads a replacement table keyed by city.
func loadDesignConditionsCSV(path string) (map[string]domain.DesignCondition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open design conditions: %w", err)
	}
	defer f.Close()

	var rows []domain.DesignCondition
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("gocsv.UnmarshalFile: %w", err)
	}

	m := make(map[string]domain.DesignCondition, len(rows))
	for _, c := range rows {
		m[strings.ToLower(c.City)] = c
	}
	return m, nil
}

// spaceProfile is the indoor design state and internal-gain densities for a
// space type.
type spaceProfile struct {
	IndoorDBC            float64
	IndoorRHPct          float64
	OccSensibleW         float64
	OccLatentW           float64
	LightingWPerSqm      float64
	EquipmentWPerSqm     float64
	FreshAirLpsPerPerson float64
}

var spaceProfiles = map[string]spaceProfile{
	"office":      {24, 55, 75, 55, 10, 15, 10},
	"residential": {25, 55, 70, 45, 6, 8, 7.5},
	"retail":      {24, 55, 75, 55, 15, 10, 8.5},
	"conference":  {24, 55, 75, 65, 10, 10, 10},
	"gym":         {22, 55, 210, 315, 8, 10, 15},
	"lobby":       {25, 60, 75, 55, 8, 3, 6},
	"server":      {22, 50, 0, 0, 6, 400, 0},
}

const defaultSpaceType = "office"

func profileFor(spaceType string) spaceProfile {
	if p, ok := spaceProfiles[strings.ToLower(spaceType)]; ok {
		return p
	}
	return spaceProfiles[defaultSpaceType]
}

// Construction U-values, W/sqm·K.
var wallU = map[string]float64{
	"brick230":  1.8,
	"aac200":    0.9,
	"rcc200":    2.5,
	"insulated": 0.45,
}

var roofU = map[string]float64{
	"rcc150":    2.0,
	"insulated": 0.6,
}

var floorU = map[string]float64{
	"slab":      1.7,
	"insulated": 0.5,
}

type glassProps struct {
	U  float64
	SC float64
}

var glassTypes = map[string]glassProps{
	"single": {5.7, 0.8},
	"double": {2.8, 0.6},
	"lowe":   {1.8, 0.45},
}

func uValue(table map[string]float64, key, fallback string) float64 {
	if v, ok := table[strings.ToLower(key)]; ok {
		return v
	}
	return table[fallback]
}

func glassFor(key string) glassProps {
	if g, ok := glassTypes[strings.ToLower(key)]; ok {
		return g
	}
	return glassTypes["single"]
}

// solarHGF is the orientation × season solar heat-gain factor, W/sqm of
// glass before the shading coefficient.
var solarHGF = map[domain.Season]map[string]float64{
	domain.SeasonSummer:  {"N": 120, "E": 530, "S": 320, "W": 530},
	domain.SeasonMonsoon: {"N": 85, "E": 370, "S": 225, "W": 370},
	domain.SeasonWinter:  {"N": 90, "E": 420, "S": 500, "W": 420},
}

// solarFor defaults to west, the worst afternoon exposure.
func solarFor(season domain.Season, orientation string) float64 {
	table, ok := solarHGF[season]
	if !ok {
		table = solarHGF[domain.SeasonSummer]
	}
	if v, ok := table[strings.ToUpper(orientation)]; ok {
		return v
	}
	return table["W"]
}
