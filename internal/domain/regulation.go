package domain

import "time"

// AreaType is the supply-area classification regulations key on.
type AreaType string

const (
	AreaRural     AreaType = "RURAL"
	AreaUrban     AreaType = "URBAN"
	AreaMetro     AreaType = "METRO"
	AreaMajorCity AreaType = "MAJOR_CITIES"
	AreaWildcard  AreaType = "ALL"
)

// LoadType distinguishes which power factor a regulation row applies to.
type LoadType string

const (
	LoadTypeSanctioned  LoadType = "SANCTIONED_LOAD"
	LoadTypeAfterDF     LoadType = "LOAD_AFTER_DF"
	LoadTypeTransformer LoadType = "TRANSFORMER_SIZING"
)

// Framework identifies one jurisdictional rule set.
type Framework struct {
	ID        int64     `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// LoadStandard is the minimum-load floor per unit carpet area for a premise
// type.
type LoadStandard struct {
	ID          int64   `db:"id" json:"-"`
	FrameworkID int64   `db:"framework_id" json:"-"`
	PremiseType string  `db:"premise_type" json:"premise_type"`
	MinWPerSqm  float64 `db:"min_w_per_sqm" json:"min_w_per_sqm"`
}

// DTCThreshold is the load-after-diversity level above which a distribution
// transformer center is required, per area type.
type DTCThreshold struct {
	ID               int64    `db:"id" json:"-"`
	FrameworkID      int64    `db:"framework_id" json:"-"`
	AreaType         AreaType `db:"area_type" json:"area_type"`
	ThresholdKVA     float64  `db:"threshold_kva" json:"threshold_kva"`
	UnitKVA          float64  `db:"unit_kva" json:"unit_kva"`
	BaseLandSqm      float64  `db:"base_land_sqm" json:"base_land_sqm"`
	IncrementLandSqm float64  `db:"increment_land_sqm" json:"increment_land_sqm"`
}

// SanctionedLimit caps the sanctioned load for a consumer arrangement.
type SanctionedLimit struct {
	ID           int64   `db:"id" json:"-"`
	FrameworkID  int64   `db:"framework_id" json:"-"`
	ConsumerKind string  `db:"consumer_kind" json:"consumer_kind"` // SINGLE or MULTIPLE
	LimitKW      float64 `db:"limit_kw" json:"limit_kw"`
	LimitKVA     float64 `db:"limit_kva" json:"limit_kva"`
}

// PowerFactor is the divisor converting kW to kVA for one load type.
type PowerFactor struct {
	ID          int64    `db:"id" json:"-"`
	FrameworkID int64    `db:"framework_id" json:"-"`
	LoadType    LoadType `db:"load_type" json:"load_type"`
	Factor      float64  `db:"factor" json:"factor"`
}

// SubstationRule is one (minLoadMVA, maxLoadMVA] band selecting a substation
// type for an area type (or the ALL wildcard).
type SubstationRule struct {
	ID          int64    `db:"id" json:"-"`
	FrameworkID int64    `db:"framework_id" json:"-"`
	AreaType    AreaType `db:"area_type" json:"area_type"`
	MinLoadMVA  float64  `db:"min_load_mva" json:"min_load_mva"`
	MaxLoadMVA  float64  `db:"max_load_mva" json:"max_load_mva"`
	StationType string   `db:"station_type" json:"station_type"`
	Feeders     int      `db:"feeders" json:"feeders"`
	LandSqm     float64  `db:"land_sqm" json:"land_sqm"`
}

// LandRequirement itemizes land handover for one infrastructure type.
type LandRequirement struct {
	ID          int64    `db:"id" json:"-"`
	FrameworkID int64    `db:"framework_id" json:"-"`
	InfraType   string   `db:"infra_type" json:"infra_type"`
	AreaType    AreaType `db:"area_type" json:"area_type"`
	LandSqm     float64  `db:"land_sqm" json:"land_sqm"`
}

// LeaseTerm is the lease arrangement for handed-over land.
type LeaseTerm struct {
	ID          int64   `db:"id" json:"-"`
	FrameworkID int64   `db:"framework_id" json:"-"`
	Years       int     `db:"years" json:"years"`
	RatePerSqm  float64 `db:"rate_per_sqm" json:"rate_per_sqm"`
	Description string  `db:"description" json:"description"`
}

// InfraSpecial flags area-type-conditional special requirements such as
// individual transformers or ring-main units.
type InfraSpecial struct {
	ID          int64    `db:"id" json:"-"`
	FrameworkID int64    `db:"framework_id" json:"-"`
	AreaType    AreaType `db:"area_type" json:"area_type"`
	Requirement string   `db:"requirement" json:"requirement"`
}

// DTCRequirement is the sizing outcome for distribution transformer centers.
type DTCRequirement struct {
	Needed       bool     `json:"needed"`
	Reason       string   `json:"reason,omitempty"`
	Count        int      `json:"count,omitempty"`
	UnitKVA      float64  `json:"unit_kva,omitempty"`
	LandSqm      float64  `json:"land_sqm,omitempty"`
	SpecialNotes []string `json:"special_notes,omitempty"`
}

// SubstationRequirement is the sizing outcome for a dedicated substation.
type SubstationRequirement struct {
	Needed      bool    `json:"needed"`
	Reason      string  `json:"reason,omitempty"`
	StationType string  `json:"station_type,omitempty"`
	Feeders     int     `json:"feeders,omitempty"`
	LandSqm     float64 `json:"land_sqm,omitempty"`
}

// ComplianceResult carries both regulatory load figures. SanctionedKW/KVA is
// the billing figure and never has diversity applied; AfterDiversityKW/KVA is
// used only for DTC and substation sizing. The two must never be conflated.
type ComplianceResult struct {
	AreaType          AreaType `json:"area_type"`
	MinimumLoadKW     float64  `json:"minimum_load_kw"`
	SanctionedKW      float64  `json:"sanctioned_kw"`
	SanctionedKVA     float64  `json:"sanctioned_kva"`
	AfterDiversityKW  float64  `json:"after_diversity_kw"`
	AfterDiversityKVA float64  `json:"after_diversity_kva"`

	DTC        DTCRequirement        `json:"dtc"`
	Substation SubstationRequirement `json:"substation"`

	LandItems    []LandRequirement `json:"land_items,omitempty"`
	TotalLandSqm float64           `json:"total_land_sqm"`
	Lease        *LeaseTerm        `json:"lease,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}
