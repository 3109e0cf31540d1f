// Package cost rolls up per-segment grid cost into a plan total. Wasted
// solar is never monetised here; optimisers that want to discourage
// waste apply a penalty inside their own objective only.
package cost

import (
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Segment returns grid_price * grid_usage for one row. A zero price
// yields zero cost regardless of usage by construction (exact decimal
// multiplication by a zero rate).
func Segment(price unit.ElectricityRate, gridUsage unit.Kwh) unit.Gbp {
	return gridUsage.Mul(price)
}

// Plan sums Segment cost across every row of a simulated plan.
func Plan(p planmodel.Plan) unit.Gbp {
	total := unit.ZeroGbp
	for _, row := range p.Rows {
		total = total.Add(Segment(row.GridPrice, row.ActualGridUsage))
	}
	return total
}

// Rows sums Segment cost across a raw (price, gridUsage) slice pair,
// used by optimisers working over partial/unannotated candidates.
func Rows(prices []unit.ElectricityRate, gridUsages []unit.Kwh) unit.Gbp {
	total := unit.ZeroGbp
	for i := range prices {
		total = total.Add(Segment(prices[i], gridUsages[i]))
	}
	return total
}
