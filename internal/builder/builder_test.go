package builder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/cost"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/forecast"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/optimise"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/timegrid"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

type constSource struct {
	solar, load unit.Kwh
	price       unit.ElectricityRate
}

func (c constSource) Solar(int, timegrid.HalfHourSegment) (unit.Kwh, error)         { return c.solar, nil }
func (c constSource) Load(int, timegrid.HalfHourSegment) (unit.Kwh, error)          { return c.load, nil }
func (c constSource) Price(time.Time, timegrid.HalfHourSegment) (unit.ElectricityRate, error) {
	return c.price, nil
}

func testBatteryParams() battery.Params {
	return battery.Params{Capacity: unit.MustKwh(10), GridChargePerSegment: unit.MustKwh(2)}
}

func newTestBuilder(opt optimise.Optimiser) *Builder {
	src := constSource{solar: unit.MustKwh(0), load: unit.MustKwh(1), price: unit.MustElectricityRate(2)}
	bp := testBatteryParams()
	return &Builder{
		Forecasts: forecast.Set{Solar: src, Load: src, Price: src, Battery: battery.Predictor{Params: bp}},
		Battery:   bp,
		Optimiser: opt,
		Params:    optimise.DefaultParams(),
	}
}

func TestCreatePlan_ProducesFullyAnnotated48SegmentPlan(t *testing.T) {
	b := newTestBuilder(optimise.NewDP())
	plan, err := b.CreatePlan(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), unit.ZeroKwh)
	require.NoError(t, err)
	assert.Len(t, plan.Rows, timegrid.SegmentCount)
	require.NoError(t, plan.ValidateChaining(unit.ZeroKwh))
	require.NoError(t, plan.ValidatePostConditions(testBatteryParams().Capacity))
}

func TestCreatePlan_RejectsOutOfRangeInitialSoC(t *testing.T) {
	b := newTestBuilder(optimise.NewDP())
	_, err := b.CreatePlan(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), unit.MustKwh(999))
	require.Error(t, err)
	pe, ok := err.(*planerr.PlanError)
	require.True(t, ok)
	assert.Equal(t, planerr.InvalidInput, pe.Kind)
}

func TestCreatePlan_BoundaryInitialSoCZeroAndCapacity(t *testing.T) {
	b := newTestBuilder(optimise.NewDP())
	bp := testBatteryParams()
	for _, soc := range []unit.Kwh{unit.ZeroKwh, bp.Capacity} {
		plan, err := b.CreatePlan(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), soc)
		require.NoError(t, err)
		assert.Equal(t, soc.Float64(), plan.Rows[0].StartSoC.Float64())
	}
}

func TestCreatePlan_ZeroGridPriceYieldsZeroCost(t *testing.T) {
	src := constSource{solar: unit.ZeroKwh, load: unit.MustKwh(1), price: unit.ZeroRate}
	bp := testBatteryParams()
	b := &Builder{
		Forecasts: forecast.Set{Solar: src, Load: src, Price: src, Battery: battery.Predictor{Params: bp}},
		Battery:   bp,
		Optimiser: optimise.NewDP(),
		Params:    optimise.DefaultParams(),
	}
	plan, err := b.CreatePlan(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), unit.ZeroKwh)
	require.NoError(t, err)
	assert.True(t, cost.Plan(*plan).Equal(unit.ZeroGbp))
}

func TestCreatePlan_CostCompositionMatchesRollup(t *testing.T) {
	b := newTestBuilder(optimise.NewGraph())
	plan, err := b.CreatePlan(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), unit.ZeroKwh)
	require.NoError(t, err)

	expected := unit.ZeroGbp
	for _, row := range plan.Rows {
		expected = expected.Add(cost.Segment(row.GridPrice, row.ActualGridUsage))
	}
	assert.True(t, cost.Plan(*plan).Equal(expected))
}
