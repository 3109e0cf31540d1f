// Package simulate implements the house energy simulator: the
// deterministic, per-segment energy balance that is the crux of the
// planner. SimulateSegment is a pure per-step transition; SimulatePlan
// runs it left-to-right across a whole plan, carrying SoC forward.
package simulate

import (
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Outcome is one segment's simulation result.
type Outcome struct {
	EndSoC      unit.Kwh
	GridUsage   unit.Kwh
	WastedSolar unit.Kwh
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SimulateSegment runs one segment's mode-keyed transition. segmentIdx
// is used only to name the offending segment in a returned error.
func SimulateSegment(segmentIdx int, mode planmodel.Mode, solar, load, startSoC unit.Kwh, params battery.Params) (Outcome, error) {
	capacity := params.Capacity
	gridCap := params.GridChargePerSegment
	s, l, b := solar.Float64(), load.Float64(), startSoC.Float64()

	switch mode {
	case planmodel.ChargeSolarOnly:
		endSoC, wasted := battery.Predict(capacity, startSoC, solar)
		return Outcome{
			EndSoC:      endSoC,
			GridUsage:   load,
			WastedSolar: wasted,
		}, nil

	case planmodel.ChargeFromGridAndSolar:
		availableToBattery := unit.MustKwh(s + gridCap.Float64())
		endSoC, totalWastage := battery.Predict(capacity, startSoC, availableToBattery)
		// The overshoot is split 50/50 between wasted solar and unused grid
		// allowance. The unused grid share cannot exceed the allowance
		// itself, so any overshoot beyond that counts as wasted solar,
		// which keeps the energy balance exact.
		effectiveGridCharge := clamp(gridCap.Float64()-totalWastage.Float64()/2, 0, gridCap.Float64())
		wastedSolar := clamp(totalWastage.Float64()-(gridCap.Float64()-effectiveGridCharge), 0, totalWastage.Float64())
		gridUsage := l + effectiveGridCharge
		if gridUsage < 0 {
			gridUsage = 0
		}
		return Outcome{
			EndSoC:      endSoC,
			GridUsage:   unit.MustKwh(gridUsage),
			WastedSolar: unit.MustKwh(wastedSolar),
		}, nil

	case planmodel.Discharge:
		if s >= l {
			surplus := unit.MustKwh(s - l)
			endSoC, wasted := battery.Predict(capacity, startSoC, surplus)
			return Outcome{
				EndSoC:      endSoC,
				GridUsage:   unit.ZeroKwh,
				WastedSolar: wasted,
			}, nil
		}
		deficit := l - s
		fromBattery := clamp(deficit, 0, b)
		endSoC := b - fromBattery
		gridUsage := deficit - fromBattery
		return Outcome{
			EndSoC:      unit.MustKwh(endSoC),
			GridUsage:   unit.MustKwh(gridUsage),
			WastedSolar: unit.ZeroKwh,
		}, nil

	default:
		return Outcome{}, planerr.NewAt(planerr.UnknownMode, segmentIdx, "mode %v is not one of the three known variants", mode)
	}
}

// CheckEnergyBalance verifies the accounting identity
// solar+grid_usage+(start_soc-end_soc) == load+wasted, within epsilon.
func CheckEnergyBalance(segmentIdx int, solar, load, startSoC unit.Kwh, o Outcome) error {
	const epsilon = 1e-9
	lhs := solar.Float64() + o.GridUsage.Float64() + (startSoC.Float64() - o.EndSoC.Float64())
	rhs := load.Float64() + o.WastedSolar.Float64()
	if diff := lhs - rhs; diff > epsilon || diff < -epsilon {
		return planerr.NewAt(planerr.InvariantViolation, segmentIdx,
			"energy balance violated: lhs=%g rhs=%g", lhs, rhs)
	}
	return nil
}

// SegmentForecastInput is the per-segment forecast the simulator needs;
// it mirrors forecast.SegmentForecast without importing that package,
// keeping simulate free of a dependency on the forecast ports.
type SegmentForecastInput struct {
	Solar unit.Kwh
	Load  unit.Kwh
	Price unit.ElectricityRate
}

// SimulatePlan runs SimulateSegment left-to-right over modes, carrying
// SoC forward from initialSoC, checks the energy balance of every
// segment, and returns one Outcome per segment.
func SimulatePlan(modes []planmodel.Mode, forecasts []SegmentForecastInput, initialSoC unit.Kwh, params battery.Params) ([]Outcome, error) {
	if len(modes) != len(forecasts) {
		return nil, planerr.New(planerr.InvalidInput, "modes length %d does not match forecasts length %d", len(modes), len(forecasts))
	}
	outcomes := make([]Outcome, len(modes))
	soc := initialSoC
	for i, mode := range modes {
		o, err := SimulateSegment(i, mode, forecasts[i].Solar, forecasts[i].Load, soc, params)
		if err != nil {
			return nil, err
		}
		if err := CheckEnergyBalance(i, forecasts[i].Solar, forecasts[i].Load, soc, o); err != nil {
			return nil, err
		}
		outcomes[i] = o
		soc = o.EndSoC
	}
	return outcomes, nil
}
