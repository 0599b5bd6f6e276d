package domain

import "time"

// SubCategoryDefault is the sub-bucket used when a factor row applies to a
// whole category rather than a specific sub-category.
const SubCategoryDefault = "default"

// FactorKey identifies a LoadFactor row. SubCategory is normalized to
// SubCategoryDefault when empty so that lookups and fallbacks share one key
// shape.
type FactorKey struct {
	Category    string
	SubCategory string
	Description string
}

func NewFactorKey(category, subCategory, description string) FactorKey {
	if subCategory == "" {
		subCategory = SubCategoryDefault
	}
	return FactorKey{Category: category, SubCategory: subCategory, Description: description}
}

// LoadFactor is immutable reference data: the watt density and demand factors
// for one load description.
type LoadFactor struct {
	ID          int64     `db:"id" json:"-"`
	Category    string    `db:"category" json:"category"`
	SubCategory string    `db:"sub_category" json:"sub_category"`
	Description string    `db:"description" json:"description"`
	WattPerSqm  *float64  `db:"watt_per_sqm" json:"watt_per_sqm,omitempty"`
	MDF         *float64  `db:"mdf" json:"mdf,omitempty"`
	EDF         *float64  `db:"edf" json:"edf,omitempty"`
	FDF         *float64  `db:"fdf" json:"fdf,omitempty"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

func (f *LoadFactor) Key() FactorKey {
	return NewFactorKey(f.Category, f.SubCategory, f.Description)
}

// DefaultLoadFactor is what getFactor falls back to on a lookup miss. The nil
// watt density is deliberate: callers must tolerate a factor that carries
// demand factors only.
func DefaultLoadFactor(key FactorKey) *LoadFactor {
	mdf, edf, fdf := 0.5, 0.5, 0.0
	return &LoadFactor{
		Category:    key.Category,
		SubCategory: key.SubCategory,
		Description: key.Description,
		WattPerSqm:  nil,
		MDF:         &mdf,
		EDF:         &edf,
		FDF:         &fdf,
		Notes:       "built-in default",
	}
}
