package optimise

import (
	"context"
	"math"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/simulate"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// tieEpsilon is the cost-equality tolerance used to apply the
// deterministic mode tie-break instead of letting floating point noise
// pick a winner.
const tieEpsilon = 1e-9

// DP is the dynamic-programming optimiser (spec §4.H): a backward value
// function over the same discretised-SoC state space the graph
// optimiser uses, computed in one direction instead of as a shortest
// path. Grounded on the teacher's internal/strategy.optimizeDP, which
// records a forward-choice backpointer while filling a backward value
// array keyed by discretised SOC.
type DP struct{}

// NewDP constructs the DP optimiser.
func NewDP() *DP { return &DP{} }

func (d *DP) Name() string { return "dp" }

func (d *DP) Optimise(ctx context.Context, forecasts []simulate.SegmentForecastInput, initialSoC unit.Kwh, bp battery.Params, params Params, sink diag.Sink) ([]planmodel.Mode, error) {
	sink = diag.OrDiscard(sink)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := len(forecasts)
	lattice := newSocLattice(bp.Capacity, params.K)
	levels := lattice.levels()

	// V[i][s] is the minimum total remaining cost from segment i at SoC
	// level s. V[n][*] = 0 by zero-value, the terminal condition.
	value := make([][]float64, n+1)
	for i := range value {
		value[i] = make([]float64, levels)
	}
	choice := make([][]planmodel.Mode, n)

	for t := n - 1; t >= 0; t-- {
		if err := checkCancelled(ctx); err != nil {
			return nil, err
		}
		choice[t] = make([]planmodel.Mode, levels)
		for s := 0; s < levels; s++ {
			best := math.Inf(1)
			var bestMode planmodel.Mode
			for _, m := range planmodel.AllModes {
				_, nextLevel, segCost, err := simulateAt(t, m, lattice, s, forecasts[t], bp)
				if err != nil {
					return nil, err
				}
				total := segCost.Float64() + value[t+1][nextLevel]
				if total < best-tieEpsilon {
					best = total
					bestMode = m
				} else if total < best+tieEpsilon && m.LessTieBreak(bestMode) {
					bestMode = m
				}
			}
			value[t][s] = best
			choice[t][s] = bestMode
		}
		sink.Printf("dp: segment %d/%d relaxed, best-at-initial-level=%.4f", n-t, n, value[t][lattice.levelOf(initialSoC)])
	}

	modes := make([]planmodel.Mode, n)
	level := lattice.levelOf(initialSoC)
	for t := 0; t < n; t++ {
		m := choice[t][level]
		modes[t] = m
		_, nextLevel, _, err := simulateAt(t, m, lattice, level, forecasts[t], bp)
		if err != nil {
			return nil, err
		}
		level = nextLevel
	}
	return modes, nil
}
