package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Fallback demand factors applied when a LoadFactor carries no value.
const (
	FallbackMDF = 0.6
	FallbackEDF = 0.6
	FallbackFDF = 0.0
)

// LoadItem is one line of a load schedule. TCL is the total connected load in
// kW before any demand factor; the demand columns are derived from it and the
// item's MDF/EDF/FDF by ApplyDemandFactors.
type LoadItem struct {
	Description string   `json:"description"`
	Nos         float64  `json:"nos"`
	UnitLoadKW  float64  `json:"unit_load_kw,omitempty"`
	TCL         float64  `json:"tcl_kw"`
	MDF         *float64 `json:"mdf,omitempty"`
	EDF         *float64 `json:"edf,omitempty"`
	FDF         *float64 `json:"fdf,omitempty"`

	MaxDemandKW float64 `json:"max_demand_kw"`
	EssentialKW float64 `json:"essential_kw"`
	FireKW      float64 `json:"fire_kw"`
}

// LoadCategory groups items under one schedule heading with rolled-up totals.
type LoadCategory struct {
	Name  string     `json:"name"`
	Items []LoadItem `json:"items"`

	TotalTCL       float64 `json:"total_tcl_kw"`
	TotalMaxDemand float64 `json:"total_max_demand_kw"`
	TotalEssential float64 `json:"total_essential_kw"`
	TotalFire      float64 `json:"total_fire_kw"`
}

// ApplyDemandFactors derives the demand columns for every item and recomputes
// the category totals. It overwrites the derived fields rather than adding to
// them, so re-running after an item change is safe.
func (c *LoadCategory) ApplyDemandFactors() {
	var tcl, md, ess, fire decimal.Decimal
	for i := range c.Items {
		item := &c.Items[i]

		mdf := FallbackMDF
		if item.MDF != nil {
			mdf = *item.MDF
		}
		edf := FallbackEDF
		if item.EDF != nil {
			edf = *item.EDF
		}
		fdf := FallbackFDF
		if item.FDF != nil {
			fdf = *item.FDF
		}

		item.MaxDemandKW = round3(item.TCL * mdf)
		item.EssentialKW = round3(item.TCL * edf)
		item.FireKW = round3(item.TCL * fdf)

		tcl = tcl.Add(decimal.NewFromFloat(item.TCL))
		md = md.Add(decimal.NewFromFloat(item.MaxDemandKW))
		ess = ess.Add(decimal.NewFromFloat(item.EssentialKW))
		fire = fire.Add(decimal.NewFromFloat(item.FireKW))
	}

	c.TotalTCL = tcl.Round(3).InexactFloat64()
	c.TotalMaxDemand = md.Round(3).InexactFloat64()
	c.TotalEssential = ess.Round(3).InexactFloat64()
	c.TotalFire = fire.Round(3).InexactFloat64()
}

// RecomputeTotals sums the item columns as they stand, without re-deriving
// the demand columns. Used after merges, where per-item demand totals add
// item-by-item and must not have factors applied a second time.
func (c *LoadCategory) RecomputeTotals() {
	var tcl, md, ess, fire decimal.Decimal
	for i := range c.Items {
		tcl = tcl.Add(decimal.NewFromFloat(c.Items[i].TCL))
		md = md.Add(decimal.NewFromFloat(c.Items[i].MaxDemandKW))
		ess = ess.Add(decimal.NewFromFloat(c.Items[i].EssentialKW))
		fire = fire.Add(decimal.NewFromFloat(c.Items[i].FireKW))
	}
	c.TotalTCL = tcl.Round(3).InexactFloat64()
	c.TotalMaxDemand = md.Round(3).InexactFloat64()
	c.TotalEssential = ess.Round(3).InexactFloat64()
	c.TotalFire = fire.Round(3).InexactFloat64()
}

func round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

// BuildingBreakdown holds one building's identity and its computed schedules.
// TwinOfBuildingID is a weak back-reference to a structurally identical tower;
// the aggregator reuses the referenced building's schedules for twins.
type BuildingBreakdown struct {
	BuildingID       string         `json:"building_id"`
	Name             string         `json:"name"`
	HeightM          float64        `json:"height_m"`
	Floors           int            `json:"floors"`
	TwinOfBuildingID string         `json:"twin_of_building_id,omitempty"`
	Categories       []LoadCategory `json:"categories"`
	FlatLoads        *LoadCategory  `json:"flat_loads,omitempty"`

	TotalTCL       float64 `json:"total_tcl_kw"`
	TotalMaxDemand float64 `json:"total_max_demand_kw"`
	TotalEssential float64 `json:"total_essential_kw"`
	TotalFire      float64 `json:"total_fire_kw"`
}

// Recompute rolls the category and flat totals up to the building level.
func (b *BuildingBreakdown) Recompute() {
	b.TotalTCL, b.TotalMaxDemand, b.TotalEssential, b.TotalFire = 0, 0, 0, 0
	for i := range b.Categories {
		b.TotalTCL += b.Categories[i].TotalTCL
		b.TotalMaxDemand += b.Categories[i].TotalMaxDemand
		b.TotalEssential += b.Categories[i].TotalEssential
		b.TotalFire += b.Categories[i].TotalFire
	}
	if b.FlatLoads != nil {
		b.TotalTCL += b.FlatLoads.TotalTCL
		b.TotalMaxDemand += b.FlatLoads.TotalMaxDemand
		b.TotalEssential += b.FlatLoads.TotalEssential
		b.TotalFire += b.FlatLoads.TotalFire
	}
	b.TotalTCL = round3(b.TotalTCL)
	b.TotalMaxDemand = round3(b.TotalMaxDemand)
	b.TotalEssential = round3(b.TotalEssential)
	b.TotalFire = round3(b.TotalFire)
}

// AggregateTotals is the project-wide roll-up across buildings and society
// loads.
type AggregateTotals struct {
	BuildingTCL       float64 `json:"building_tcl_kw"`
	BuildingMaxDemand float64 `json:"building_max_demand_kw"`
	SocietyTCL        float64 `json:"society_tcl_kw"`
	SocietyMaxDemand  float64 `json:"society_max_demand_kw"`

	GrandTCL       float64 `json:"grand_tcl_kw"`
	GrandMaxDemand float64 `json:"grand_max_demand_kw"`
	GrandEssential float64 `json:"grand_essential_kw"`
	GrandFire      float64 `json:"grand_fire_kw"`

	// TransformerKVA is the rule-of-thumb estimate: max demand at 0.9 power
	// factor, rounded up to the nearest 100 kVA.
	TransformerKVA float64 `json:"transformer_kva"`

	// RepresentativeMultiplied is set when per-building metadata was absent
	// and the totals are a single representative building multiplied by the
	// building count.
	RepresentativeMultiplied bool     `json:"representative_multiplied,omitempty"`
	Warnings                 []string `json:"warnings,omitempty"`
}

// EstimateTransformerKVA applies the 0.9 PF / nearest-100 rounding rule.
func EstimateTransformerKVA(maxDemandKW float64) float64 {
	if maxDemandKW <= 0 {
		return 0
	}
	return math.Ceil(maxDemandKW/0.9/100.0) * 100.0
}
