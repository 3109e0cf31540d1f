// Package builder implements the plan builder (spec §4.J): it gathers
// forecasts, asks the selected optimiser for a mode sequence, simulates
// it, and validates the result before handing back an annotated Plan.
package builder

import (
	"context"
	"time"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/forecast"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/optimise"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/simulate"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/timegrid"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Builder orchestrates one planning run: forecast lookup, optimiser
// invocation, simulation and post-condition validation, in that order
// (spec §5: "(read all forecasts) -> (optimise) -> (simulate)").
type Builder struct {
	Forecasts forecast.Set
	Battery   battery.Params
	Optimiser optimise.Optimiser
	Params    optimise.Params
	Sink      diag.Sink
}

// CreatePlan implements the core's create_plan(date, initial_soc) ->
// Plan external interface.
func (b *Builder) CreatePlan(ctx context.Context, date time.Time, initialSoC unit.Kwh) (*planmodel.Plan, error) {
	sink := diag.OrDiscard(b.Sink)

	if err := b.validateInputs(initialSoC); err != nil {
		return nil, err
	}

	segmentForecasts, err := forecast.Gather(b.Forecasts, date)
	if err != nil {
		return nil, err
	}
	simInputs := make([]simulate.SegmentForecastInput, len(segmentForecasts))
	for i, f := range segmentForecasts {
		simInputs[i] = simulate.SegmentForecastInput{Solar: f.Solar, Load: f.Load, Price: f.Price}
	}

	sink.Printf("builder: optimising with %s", b.Optimiser.Name())
	modes, err := b.Optimiser.Optimise(ctx, simInputs, initialSoC, b.Battery, b.Params, sink)
	if err != nil {
		return nil, err
	}

	outcomes, err := simulate.SimulatePlan(modes, simInputs, initialSoC, b.Battery)
	if err != nil {
		return nil, err
	}

	plan := annotate(segmentForecasts, modes, outcomes, initialSoC)

	if err := plan.ValidateChaining(initialSoC); err != nil {
		return nil, err
	}
	if err := plan.ValidatePostConditions(b.Battery.Capacity); err != nil {
		return nil, err
	}

	sink.Printf("builder: plan built, %d segments", len(plan.Rows))
	return &plan, nil
}

func (b *Builder) validateInputs(initialSoC unit.Kwh) error {
	if initialSoC.Float64() < 0 || initialSoC.Float64() > b.Battery.Capacity.Float64() {
		return planerr.New(planerr.InvalidInput, "initial_soc %s outside [0,%s]", initialSoC, b.Battery.Capacity)
	}
	return b.Battery.Validate()
}

func annotate(forecasts []forecast.SegmentForecast, modes []planmodel.Mode, outcomes []simulate.Outcome, initialSoC unit.Kwh) planmodel.Plan {
	var plan planmodel.Plan
	soc := initialSoC
	for i := 0; i < timegrid.SegmentCount; i++ {
		plan.Rows[i] = planmodel.TimeSegment{
			Segment:         forecasts[i].Segment,
			Mode:            modes[i],
			ExpectedSolar:   forecasts[i].Solar,
			ExpectedLoad:    forecasts[i].Load,
			GridPrice:       forecasts[i].Price,
			StartSoC:        soc,
			EndSoC:          outcomes[i].EndSoC,
			ActualGridUsage: outcomes[i].GridUsage,
			WastedSolar:     outcomes[i].WastedSolar,
		}
		soc = outcomes[i].EndSoC
	}
	return plan
}
