package electrical

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/domain/dto"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
	"github.com/voltplan/loadcalc/internal/service/regulation"
)

// Service runs the electrical load pipeline: category calculators → demand
// aggregation → multi-building aggregation → regulatory compliance.
type Service struct {
	provider *regulation.Provider
}

func NewService(provider *regulation.Provider) *Service {
	return &Service{provider: provider}
}

// Result is the complete outcome of one electrical run.
type Result struct {
	BuildingCALoads    []domain.LoadCategory      `json:"building_ca_loads"`
	FlatLoads          *domain.LoadCategory       `json:"flat_loads,omitempty"`
	SocietyCALoads     []domain.LoadCategory      `json:"society_ca_loads"`
	Totals             domain.AggregateTotals     `json:"totals"`
	BuildingBreakdowns []domain.BuildingBreakdown `json:"building_breakdowns"`
	Compliance         *domain.ComplianceResult   `json:"regulatory_compliance"`
	AreaType           domain.AreaType            `json:"area_type"`
	Warnings           []string                   `json:"warnings,omitempty"`
}

func validateInputs(in *dto.ElectricalInputs) error {
	if in.BuildingHeightM == nil {
		return domain.NewValidationError("buildingHeight")
	}
	if in.NumberOfFloors == nil {
		return domain.NewValidationError("numberOfFloors")
	}
	if in.PassengerLifts == nil {
		return domain.NewValidationError("passengerLifts")
	}
	return nil
}

// Calculate is pure given identical inputs and an identical regulation
// snapshot: it persists nothing and keeps no state between runs.
func (s *Service) Calculate(ctx context.Context, in *dto.ElectricalInputs, reg dto.RegulatoryContext) (*Result, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}

	snap := s.provider.Snapshot(reg.ProjectID, reg.FrameworkCodes)
	snap.LoadFactors(ctx)

	breakdowns, representative, err := s.calcBuildings(ctx, in, snap)
	if err != nil {
		return nil, err
	}

	society := CalcSocietyLoads(ctx, in, snap)

	totals := Aggregate(breakdowns, society)
	if representative {
		totals.RepresentativeMultiplied = true
		totals.Warnings = append(totals.Warnings, fmt.Sprintf(
			"no per-building metadata: one representative building multiplied by %d; accuracy depends on the towers being near-identical",
			len(breakdowns)))
	}

	res := &Result{
		SocietyCALoads:     society,
		Totals:             totals,
		BuildingBreakdowns: breakdowns,
		AreaType:           domain.AreaType(reg.AreaType),
	}
	if res.AreaType == "" {
		res.AreaType = domain.AreaUrban
	}

	for i := range breakdowns {
		res.BuildingCALoads = MergeCategories(res.BuildingCALoads, breakdowns[i].Categories)
		if breakdowns[i].FlatLoads != nil {
			merged := MergeCategories(flatSlice(res.FlatLoads), []domain.LoadCategory{*breakdowns[i].FlatLoads})
			res.FlatLoads = &merged[0]
		}
	}

	res.Compliance = Comply(ctx, snap, totals, reg, len(breakdowns))

	warnings := snap.Warnings()
	sort.Strings(warnings)
	res.Warnings = warnings

	return res, nil
}

func flatSlice(c *domain.LoadCategory) []domain.LoadCategory {
	if c == nil {
		return nil
	}
	return []domain.LoadCategory{*c}
}

// calcBuildings fans the per-building calculation out; buildings are mutually
// independent, so each runs on its own goroutine. The representative flag is
// set when buildings carried no metadata and the single calculation was
// multiplied by the building count.
func (s *Service) calcBuildings(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot) ([]domain.BuildingBreakdown, bool, error) {
	if len(in.Buildings) == 0 {
		b := s.calcBuilding(ctx, in, snap, "B1", "Building 1",
			*in.BuildingHeightM, *in.NumberOfFloors, in.Flats)

		count := in.NumberOfBuildings
		if count <= 1 {
			return []domain.BuildingBreakdown{b}, false, nil
		}

		logger.Warnf(ctx, "multiplying representative building by %d: no per-building metadata", count)
		return MultiplyBreakdown(b, count), true, nil
	}

	breakdowns := make([]domain.BuildingBreakdown, len(in.Buildings))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, bi := range in.Buildings {
		if bi.TwinOfBuildingID != "" {
			continue
		}
		i, bi := i, bi
		eg.Go(func() error {
			heightM := bi.HeightM
			if heightM == 0 {
				heightM = *in.BuildingHeightM
			}
			floors := bi.Floors
			if floors == 0 {
				floors = *in.NumberOfFloors
			}
			flats := bi.Flats
			if flats == nil {
				flats = in.Flats
			}

			breakdowns[i] = s.calcBuilding(egCtx, in, snap, bi.ID, bi.Name, heightM, floors, flats)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, false, fmt.Errorf("err in goroutine: %w", err)
	}

	// twins reuse the referenced building's schedules under their own identity
	for i, bi := range in.Buildings {
		if bi.TwinOfBuildingID == "" {
			continue
		}
		parent := findBreakdown(breakdowns, in.Buildings, bi.TwinOfBuildingID)
		if parent == nil {
			return nil, false, domain.NewValidationError(fmt.Sprintf("twinOfBuildingId %s", bi.TwinOfBuildingID))
		}
		twin := *parent
		twin.BuildingID = bi.ID
		twin.Name = bi.Name
		twin.TwinOfBuildingID = bi.TwinOfBuildingID
		breakdowns[i] = twin
	}

	return breakdowns, false, nil
}

func findBreakdown(breakdowns []domain.BuildingBreakdown, inputs []dto.BuildingInput, id string) *domain.BuildingBreakdown {
	for i := range inputs {
		if inputs[i].ID == id && inputs[i].TwinOfBuildingID == "" {
			return &breakdowns[i]
		}
	}
	return nil
}

func (s *Service) calcBuilding(ctx context.Context, in *dto.ElectricalInputs, snap *regulation.Snapshot, id, name string, heightM float64, floors int, flats []dto.FlatTypeInput) domain.BuildingBreakdown {
	b := domain.BuildingBreakdown{
		BuildingID: id,
		Name:       name,
		HeightM:    heightM,
		Floors:     floors,
	}

	b.Categories = []domain.LoadCategory{
		CalcLighting(ctx, in, floors, snap),
		CalcLifts(ctx, in, heightM, snap),
		CalcHVACElectrical(ctx, in, snap),
		CalcPressurization(ctx, in, snap),
		CalcPHE(ctx, in, snap),
		CalcFireFighting(ctx, in, snap),
	}

	if len(flats) > 0 {
		flatCat := CalcFlats(ctx, flats, snap)
		b.FlatLoads = &flatCat
	}

	b.Recompute()
	return b
}
