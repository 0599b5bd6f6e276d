package hvac

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
)

// Run option defaults.
const (
	DefaultSafetyFactor    = 1.10
	DefaultDuctLossFactor  = 1.05
	DefaultDiversityFactor = 1.0
)

// Service runs the cooling pipeline: room heat gain → plant summary →
// equipment sizing. It holds only the design-condition table.
type Service struct {
	conditions map[string]domain.DesignCondition
}

func NewService() *Service {
	return &Service{conditions: defaultDesignConditions()}
}

// NewServiceFromCSV replaces the built-in design-condition table with the
// CSV at path.
func NewServiceFromCSV(path string) (*Service, error) {
	conditions, err := loadDesignConditionsCSV(path)
	if err != nil {
		return nil, err
	}
	if len(conditions) == 0 {
		return nil, fmt.Errorf("design conditions csv %s is empty", path)
	}
	return &Service{conditions: conditions}, nil
}

// fallbackCondition picks the alphabetically first city so the degraded
// result stays deterministic. The table is never empty: the built-ins always
// load and NewServiceFromCSV rejects an empty file.
func (s *Service) fallbackCondition() domain.DesignCondition {
	names := make([]string, 0, len(s.conditions))
	for name := range s.conditions {
		names = append(names, name)
	}
	sort.Strings(names)
	return s.conditions[names[0]]
}

// Result is the complete outcome of one cooling-load run.
type Result struct {
	DesignConditions domain.DesignCondition    `json:"design_conditions"`
	Season           domain.Season             `json:"season"`
	RoomResults      []domain.RoomResult       `json:"room_results"`
	Summary          domain.HVACSummary        `json:"summary"`
	ChillerSizing    domain.ChillerSizing      `json:"chiller_sizing"`
	AHUSizing        domain.AHUSizing          `json:"ahu_sizing"`
	CoolingTower     domain.CoolingTowerSizing `json:"cooling_tower_sizing"`
	Warnings         []string                  `json:"warnings,omitempty"`
}

// Calculate is pure given identical params and rooms. Rooms are mutually
// independent and computed concurrently.
func (s *Service) Calculate(ctx context.Context, params dto.HVACParams, rooms []domain.Room) (*Result, error) {
	if len(rooms) == 0 {
		return nil, domain.NewValidationError("rooms")
	}

	city := strings.ToLower(params.City)
	if city == "" {
		city = DefaultCity
	}

	res := &Result{Season: domain.Season(params.Season)}
	if res.Season == "" {
		res.Season = domain.SeasonSummer
	}

	design, ok := s.conditions[city]
	if !ok {
		design, ok = s.conditions[DefaultCity]
		if !ok {
			// a CSV override may omit the default city entirely
			design = s.fallbackCondition()
		}
		logger.Warnf(ctx, "no design conditions for city %q, using %s", params.City, design.City)
		res.Warnings = append(res.Warnings, fmt.Sprintf("no design conditions for city %q, %s assumed", params.City, design.City))
	}
	res.DesignConditions = design

	res.RoomResults = make([]domain.RoomResult, len(rooms))
	eg, _ := errgroup.WithContext(ctx)
	for i, room := range rooms {
		i, room := i, room
		eg.Go(func() error {
			res.RoomResults[i] = CalcRoom(room, design, res.Season)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	res.Summary = s.summarize(res.RoomResults, params)
	res.ChillerSizing = SizeChillers(res.Summary.DiversifiedTR)
	res.AHUSizing = SizeAHUs(res.Summary.TotalCFM)
	res.CoolingTower = SizeCoolingTower(res.ChillerSizing.UnitTR * float64(res.ChillerSizing.WorkingUnits))

	return res, nil
}

func (s *Service) summarize(results []domain.RoomResult, params dto.HVACParams) domain.HVACSummary {
	safety := params.SafetyFactor
	if safety == 0 {
		safety = DefaultSafetyFactor
	}
	ductLoss := params.DuctLossFactor
	if ductLoss == 0 {
		ductLoss = DefaultDuctLossFactor
	}
	diversity := params.DiversityFactor
	if diversity == 0 {
		diversity = DefaultDiversityFactor
	}

	sensible := make([]float64, len(results))
	latent := make([]float64, len(results))
	cfm := make([]float64, len(results))
	for i := range results {
		sensible[i] = results[i].SensibleW
		latent[i] = results[i].LatentW
		cfm[i] = results[i].SupplyAirflowCFM
	}

	var sum domain.HVACSummary
	sum.TotalSensibleW = round1(floats.Sum(sensible))
	sum.TotalLatentW = round1(floats.Sum(latent))
	sum.TotalW = round1(sum.TotalSensibleW + sum.TotalLatentW)
	sum.TotalTR = round1(sum.TotalW / domain.WattsPerTR)
	sum.DesignTR = round1(sum.TotalTR * safety * ductLoss)
	sum.DiversifiedTR = round1(sum.DesignTR * diversity)
	sum.TotalCFM = round1(floats.Sum(cfm))

	return sum
}
