// Package rank compares plans produced by different optimisers for the
// same forecasts. Adapted from the teacher's internal/analysis/rank.go
// (RankByOracleProfit), generalised from profit-descending to
// cost-ascending since this system reports cost, not profit.
package rank

import (
	"sort"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/cost"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
)

// NamedPlan pairs a plan with the name of the optimiser that produced it.
type NamedPlan struct {
	OptimiserName string
	Plan          planmodel.Plan
	Cost          float64
}

// ByCost computes each plan's total cost and sorts ascending: the
// cheapest plan first.
func ByCost(plans map[string]planmodel.Plan) []NamedPlan {
	out := make([]NamedPlan, 0, len(plans))
	for name, p := range plans {
		out = append(out, NamedPlan{OptimiserName: name, Plan: p, Cost: cost.Plan(p).Float64()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].OptimiserName < out[j].OptimiserName
	})
	return out
}
