package optimise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/cost"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/simulate"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

func TestGraph_Scenario2_NoSolarFlatTariff(t *testing.T) {
	forecasts := constForecast(12, 0, 1, 4)
	g := NewGraph()
	modes, err := g.Optimise(context.Background(), forecasts, unit.ZeroKwh, scenarioParams(), DefaultParams(), diag.Discard{})
	require.NoError(t, err)

	outcomes, err := simulate.SimulatePlan(modes, forecasts, unit.ZeroKwh, scenarioParams())
	require.NoError(t, err)
	total := unit.ZeroGbp
	for i, o := range outcomes {
		total = total.Add(cost.Segment(forecasts[i].Price, o.GridUsage))
	}
	assert.True(t, total.Equal(unit.NewGbp(48)), "got %s", total)
}

func TestGraphAndDP_AgreeOnConstantForecasts(t *testing.T) {
	forecasts := constForecast(12, 2, 3, 5)
	params := DefaultParams()
	params.K = 20

	g := NewGraph()
	gModes, err := g.Optimise(context.Background(), forecasts, unit.MustKwh(5), scenarioParams(), params, diag.Discard{})
	require.NoError(t, err)

	d := NewDP()
	dModes, err := d.Optimise(context.Background(), forecasts, unit.MustKwh(5), scenarioParams(), params, diag.Discard{})
	require.NoError(t, err)

	gOutcomes, err := simulate.SimulatePlan(gModes, forecasts, unit.MustKwh(5), scenarioParams())
	require.NoError(t, err)
	dOutcomes, err := simulate.SimulatePlan(dModes, forecasts, unit.MustKwh(5), scenarioParams())
	require.NoError(t, err)

	gCost, dCost := unit.ZeroGbp, unit.ZeroGbp
	for i := range forecasts {
		gCost = gCost.Add(cost.Segment(forecasts[i].Price, gOutcomes[i].GridUsage))
		dCost = dCost.Add(cost.Segment(forecasts[i].Price, dOutcomes[i].GridUsage))
	}

	// Discretisation step at K=20, capacity 10 is 0.5 kWh; at price 5/kWh
	// that bounds disagreement to <= 2.50.
	diff := gCost.Float64() - dCost.Float64()
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, 2.5, "graph=%s dp=%s", gCost, dCost)
}

func TestGraph_RejectsInvalidParams(t *testing.T) {
	g := NewGraph()
	params := DefaultParams()
	params.Population = 0
	_, err := g.Optimise(context.Background(), constForecast(4, 0, 1, 1), unit.ZeroKwh, scenarioParams(), params, diag.Discard{})
	require.Error(t, err)
}

func TestGraph_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGraph()
	_, err := g.Optimise(ctx, constForecast(12, 0, 1, 1), unit.ZeroKwh, scenarioParams(), DefaultParams(), diag.Discard{})
	require.Error(t, err)
}
