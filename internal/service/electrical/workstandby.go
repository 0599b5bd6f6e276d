package electrical

import (
	"context"
	"regexp"
	"strconv"

	"github.com/voltplan/loadcalc/internal/pkg/logger"
)

var workStandbyRe = regexp.MustCompile(`(?i)^(\d+)W(?:\s*\+\s*(\d+)S)?$`)

// parseWorkingStandby parses configuration strings like "2W+1S" into working
// and standby unit counts. A malformed string degrades to one working unit
// with a diagnostic rather than failing the run.
func parseWorkingStandby(ctx context.Context, config, fallback string) (working, standby int) {
	if config == "" {
		config = fallback
	}

	m := workStandbyRe.FindStringSubmatch(config)
	if m == nil {
		logger.Warnf(ctx, "unparseable working/standby config %q, assuming 1W", config)
		return 1, 0
	}

	working, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		standby, _ = strconv.Atoi(m[2])
	}
	if working < 1 {
		working = 1
	}

	return working, standby
}
