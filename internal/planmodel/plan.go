package planmodel

import (
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/timegrid"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// TimeSegment is one row of a Plan: the segment it covers, the mode
// chosen for it, its forecast inputs, and its simulation outputs.
type TimeSegment struct {
	Segment timegrid.HalfHourSegment
	Mode    Mode

	ExpectedSolar unit.Kwh
	ExpectedLoad  unit.Kwh
	GridPrice     unit.ElectricityRate

	StartSoC        unit.Kwh
	EndSoC          unit.Kwh
	ActualGridUsage unit.Kwh
	WastedSolar     unit.Kwh
}

// Plan is the ordered sequence of exactly timegrid.SegmentCount
// TimeSegments returned by the core.
type Plan struct {
	Rows [timegrid.SegmentCount]TimeSegment
}

// NewPlan builds an unsimulated Plan skeleton: mode and forecast inputs
// set, simulation outputs zeroed. The simulator fills in the outputs.
func NewPlan(modes [timegrid.SegmentCount]Mode, forecasts [timegrid.SegmentCount]struct {
	Solar unit.Kwh
	Load  unit.Kwh
	Price unit.ElectricityRate
}) Plan {
	var p Plan
	grid := timegrid.Segments()
	for i := range p.Rows {
		p.Rows[i] = TimeSegment{
			Segment:       grid[i],
			Mode:          modes[i],
			ExpectedSolar: forecasts[i].Solar,
			ExpectedLoad:  forecasts[i].Load,
			GridPrice:     forecasts[i].Price,
		}
	}
	return p
}

// ValidateChaining checks plan[i].end_soc == plan[i+1].start_soc for all
// i and plan[0].start_soc == initialSoC.
func (p Plan) ValidateChaining(initialSoC unit.Kwh) error {
	if p.Rows[0].StartSoC.Float64() != initialSoC.Float64() {
		return planerr.NewAt(planerr.InvariantViolation, 0,
			"start_soc %s does not match initial_soc %s", p.Rows[0].StartSoC, initialSoC)
	}
	for i := 0; i < len(p.Rows)-1; i++ {
		if p.Rows[i].EndSoC.Float64() != p.Rows[i+1].StartSoC.Float64() {
			return planerr.NewAt(planerr.InvariantViolation, i,
				"end_soc %s does not match next segment's start_soc %s",
				p.Rows[i].EndSoC, p.Rows[i+1].StartSoC)
		}
	}
	return nil
}

// ValidatePostConditions checks the per-segment invariants spec's plan
// builder must enforce: no negative SoC, no SoC above capacity,
// non-negative grid usage. Any violation names the offending segment.
func (p Plan) ValidatePostConditions(capacity unit.Kwh) error {
	for i, row := range p.Rows {
		if row.StartSoC.Float64() < 0 || row.StartSoC.Float64() > capacity.Float64() {
			return planerr.NewAt(planerr.InvariantViolation, i, "start_soc %s out of range [0,%s]", row.StartSoC, capacity)
		}
		if row.EndSoC.Float64() < 0 || row.EndSoC.Float64() > capacity.Float64() {
			return planerr.NewAt(planerr.InvariantViolation, i, "end_soc %s out of range [0,%s]", row.EndSoC, capacity)
		}
		if row.ActualGridUsage.Float64() < 0 {
			return planerr.NewAt(planerr.InvariantViolation, i, "actual_grid_usage %s is negative", row.ActualGridUsage)
		}
		if row.WastedSolar.Float64() < 0 {
			return planerr.NewAt(planerr.InvariantViolation, i, "wasted_solar %s is negative", row.WastedSolar)
		}
	}
	return nil
}

// Modes returns the plan's mode sequence, e.g. to feed back into the
// simulator for an idempotence check.
func (p Plan) Modes() [timegrid.SegmentCount]Mode {
	var modes [timegrid.SegmentCount]Mode
	for i, row := range p.Rows {
		modes[i] = row.Mode
	}
	return modes
}
