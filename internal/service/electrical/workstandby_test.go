package electrical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkingStandby(t *testing.T) {
	cases := []struct {
		config   string
		fallback string
		working  int
		standby  int
	}{
		{"1W", "1W", 1, 0},
		{"2W", "1W", 2, 0},
		{"2W+1S", "1W", 2, 1},
		{"3w + 2s", "1W", 3, 2},
		{"", "1W+1S", 1, 1},
		{"", "2W", 2, 0},
		// malformed strings degrade to one working unit
		{"garbage", "1W", 1, 0},
		{"W+S", "1W", 1, 0},
		{"2W+1S extra", "1W", 1, 0},
		{"0W", "1W", 1, 0},
	}

	for _, tc := range cases {
		working, standby := parseWorkingStandby(context.Background(), tc.config, tc.fallback)
		assert.Equal(t, tc.working, working, "config %q", tc.config)
		assert.Equal(t, tc.standby, standby, "config %q", tc.config)
	}
}
