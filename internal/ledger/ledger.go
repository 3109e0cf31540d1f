// Package ledger renders an annotated Plan to a CSV ledger, one row per
// segment. Adapted from the teacher's internal/backtest/csv.go, with
// columns renamed to this system's TimeSegment fields.
package ledger

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
)

var header = []string{
	"index",
	"segment",
	"mode",
	"expected_solar_kwh",
	"expected_load_kwh",
	"grid_price_gbp_per_kwh",
	"start_soc_kwh",
	"end_soc_kwh",
	"actual_grid_usage_kwh",
	"wasted_solar_kwh",
	"segment_cost_gbp",
	"cumulative_cost_gbp",
}

// WritePlanCSV writes plan to w as CSV, one row per TimeSegment.
func WritePlanCSV(w io.Writer, plan planmodel.Plan) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return err
	}

	cumulative := 0.0
	for i, row := range plan.Rows {
		segmentCost := row.GridPrice.Float64() * row.ActualGridUsage.Float64()
		cumulative += segmentCost
		record := []string{
			strconv.Itoa(i),
			row.Segment.String(),
			row.Mode.String(),
			fmtFloat(row.ExpectedSolar.Float64()),
			fmtFloat(row.ExpectedLoad.Float64()),
			fmtFloat(row.GridPrice.Float64()),
			fmtFloat(row.StartSoC.Float64()),
			fmtFloat(row.EndSoC.Float64()),
			fmtFloat(row.ActualGridUsage.Float64()),
			fmtFloat(row.WastedSolar.Float64()),
			fmtFloat(segmentCost),
			fmtFloat(cumulative),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
