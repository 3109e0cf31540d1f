// Package forecast defines the read-only capabilities the plan builder
// consumes: solar, load and price forecasts, and the battery predictor.
// All four are external collaborators from the core's point of view —
// the core never mutates them and never retries their errors.
package forecast

import (
	"time"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/timegrid"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Solar reports expected solar generation for a segment of a given day.
type Solar interface {
	Solar(dayOfYear int, segment timegrid.HalfHourSegment) (unit.Kwh, error)
}

// Load reports expected household load for a segment of a given day.
type Load interface {
	Load(dayOfYear int, segment timegrid.HalfHourSegment) (unit.Kwh, error)
}

// Price reports the grid tariff for a segment of a calendar date.
type Price interface {
	Price(date time.Time, segment timegrid.HalfHourSegment) (unit.ElectricityRate, error)
}

// BatteryPredictor models the battery as a pure function of its inputs.
// Set carries it for callers; the simulator does not call this port, it
// calls battery.Predict directly with the battery capacity. See
// internal/battery for the reference implementation.
type BatteryPredictor interface {
	Predict(startSoC, availableChargeEnergy unit.Kwh) (newSoC, wastage unit.Kwh, err error)
}

// Set bundles the four ports the plan builder needs for one run.
type Set struct {
	Solar    Solar
	Load     Load
	Price    Price
	Battery  BatteryPredictor
}

// SegmentForecast is the materialised forecast for one segment, gathered
// once up front per spec's "(read all forecasts) -> (optimise) ->
// (simulate)" ordering.
type SegmentForecast struct {
	Segment timegrid.HalfHourSegment
	Solar   unit.Kwh
	Load    unit.Kwh
	Price   unit.ElectricityRate
}

// Gather materialises the forecast for every segment of the grid for one
// day, in index order. It performs no concurrent I/O: ordering must stay
// deterministic and the ports are cheap, in-process lookups in this
// core's contract.
func Gather(set Set, date time.Time) ([]SegmentForecast, error) {
	dayOfYear := date.YearDay()
	grid := timegrid.Segments()
	out := make([]SegmentForecast, len(grid))
	for i, seg := range grid {
		s, err := set.Solar.Solar(dayOfYear, seg)
		if err != nil {
			return nil, err
		}
		l, err := set.Load.Load(dayOfYear, seg)
		if err != nil {
			return nil, err
		}
		p, err := set.Price.Price(date, seg)
		if err != nil {
			return nil, err
		}
		out[i] = SegmentForecast{Segment: seg, Solar: s, Load: l, Price: p}
	}
	return out, nil
}
