package electrical

import (
	"github.com/shopspring/decimal"

	"github.com/voltplan/loadcalc/internal/domain"
)

func round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

// newItem builds a schedule line inheriting the demand factors of its load
// factor. The derived demand columns are filled by ApplyDemandFactors.
func newItem(description string, nos, unitKW, tcl float64, f *domain.LoadFactor) domain.LoadItem {
	return domain.LoadItem{
		Description: description,
		Nos:         nos,
		UnitLoadKW:  round3(unitKW),
		TCL:         round3(tcl),
		MDF:         f.MDF,
		EDF:         f.EDF,
		FDF:         f.FDF,
	}
}
