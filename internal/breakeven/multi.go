package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// SolveAllSectors solves the same raise in every sector. The current gross
// salary is kept; only the sector rules change.
func (s *Solver) SolveAllSectors(ctx context.Context, req RaiseRequest) (*MultiSectorResult, error) {
	result := &MultiSectorResult{}

	for _, sector := range domain.Sectors() {
		select {
		case <-ctx.Done():
			return nil, &BreakEvenError{Operation: "solve_all_sectors", Message: "cancelled", Cause: ctx.Err()}
		default:
		}

		sectorReq := req
		sectorReq.Sector = sector
		sectorReq.Options.Sector = sector

		r, err := s.Solve(ctx, sectorReq)
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "solve_all_sectors",
				Message:   fmt.Sprintf("failed to solve sector %s", sector),
				Cause:     err,
			}
		}
		result.Results = append(result.Results, *r)
	}

	for i := range result.Results {
		r := &result.Results[i]
		if !r.Success {
			continue
		}
		if result.Best == nil || r.NetShare.GreaterThan(result.Best.NetShare) {
			result.Best = r
		}
	}

	result.Recommendations = generateRecommendations(result)
	return result, nil
}

func generateRecommendations(result *MultiSectorResult) []string {
	if result.Best == nil {
		return []string{"No sector can deliver this raise within the constraints"}
	}

	best := result.Best
	recs := []string{
		fmt.Sprintf("Best: %s passes %s%% of the extra cost to the employee (+%s lei net for %s lei)",
			best.Sector.Label(), best.NetShare.StringFixed(1),
			best.NetIncrease.StringFixed(0), best.CostIncrease.StringFixed(0)),
	}

	for _, r := range result.Results {
		if r.Sector == best.Sector || !r.Success {
			continue
		}
		if diff := r.CostIncrease.Sub(best.CostIncrease); diff.IsPositive() && r.NetIncrease.Equal(best.NetIncrease) {
			recs = append(recs, fmt.Sprintf("%s: the same raise costs %s lei more", r.Sector.Label(), diff.StringFixed(0)))
		}
	}
	return recs
}
