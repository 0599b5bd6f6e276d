package hvac

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conditionsCSV = `city,summer_db_c,summer_wb_c,monsoon_db_c,winter_db_c,outdoor_rh_pct
Nagpur,44.0,24.5,33.0,16.0,45
goa,33.5,27.5,29.5,26.0,80
`

func TestNewServiceFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conditions.csv")
	require.NoError(t, os.WriteFile(path, []byte(conditionsCSV), 0o644))

	svc, err := NewServiceFromCSV(path)
	require.NoError(t, err)

	// city keys are lowercased on load
	nagpur, ok := svc.conditions["nagpur"]
	require.True(t, ok)
	assert.Equal(t, 44.0, nagpur.SummerDBC)
	assert.Equal(t, 45.0, nagpur.OutdoorRHPct)

	_, ok = svc.conditions["goa"]
	assert.True(t, ok)
	// the CSV replaces the table entirely
	_, ok = svc.conditions["mumbai"]
	assert.False(t, ok)
}

func TestNewServiceFromCSVMissingFile(t *testing.T) {
	_, err := NewServiceFromCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestSolarForDefaultsWest(t *testing.T) {
	assert.Equal(t, solarFor("summer", "W"), solarFor("summer", "NW"))
	assert.Equal(t, solarFor("summer", "e"), solarFor("summer", "E"))
}
