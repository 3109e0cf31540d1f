// Package optimise implements the three pluggable plan optimisers:
// graph/Dijkstra, dynamic programming, and a genetic algorithm. All
// three share the discretised-SoC state space described in spec §4.G/H
// and the Optimiser capability contract from spec §9 ("model as a
// sealed set of variants behind a single capability optimise(forecasts,
// params) -> mode_sequence; no inheritance graph").
package optimise

import (
	"context"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/simulate"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Params bundles every optimiser's hyperparameters. Not every field is
// used by every optimiser; defaults are applied by DefaultParams.
type Params struct {
	// K is the number of SoC discretisation steps (graph/DP), giving K+1
	// levels from 0 to capacity; default 20.
	K int

	// Population, Generations, Seed, TournamentSize, CrossoverRate,
	// MutationRate and Elitism parameterise the GA.
	Population     int
	Generations    int
	Seed           int64
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64
	Elitism        int

	// WastePenalty is the GBP/kWh constant (lambda) applied to wasted
	// solar inside the GA's fitness and the graph optimiser's edge
	// weight; it never affects the reported plan cost.
	WastePenalty unit.ElectricityRate
}

// DefaultParams returns spec's documented defaults.
func DefaultParams() Params {
	return Params{
		K:              20,
		Population:     100,
		Generations:    200,
		Seed:           1,
		TournamentSize: 5,
		CrossoverRate:  0.8,
		MutationRate:   1.0 / 48.0,
		Elitism:        2,
		WastePenalty:   unit.MustElectricityRate(5.0),
	}
}

// Validate checks the hyperparameters the spec calls out as possible
// InvalidInput conditions (K < 1; population or generations < 1).
func (p Params) Validate() error {
	if p.K < 1 {
		return planerr.New(planerr.InvalidInput, "K must be >= 1, got %d", p.K)
	}
	if p.Population < 1 {
		return planerr.New(planerr.InvalidInput, "population must be >= 1, got %d", p.Population)
	}
	if p.Generations < 1 {
		return planerr.New(planerr.InvalidInput, "generations must be >= 1, got %d", p.Generations)
	}
	return nil
}

// Optimiser is the single capability every strategy implements: given
// forecasts, battery parameters and an initial SoC, produce a mode
// sequence of the same length as forecasts.
type Optimiser interface {
	Name() string
	Optimise(ctx context.Context, forecasts []simulate.SegmentForecastInput, initialSoC unit.Kwh, bp battery.Params, params Params, sink diag.Sink) ([]planmodel.Mode, error)
}

// socLattice discretises [0, capacity] into K+1 levels, shared by the
// graph and DP optimisers.
type socLattice struct {
	capacity float64
	k        int
	step     float64
}

func newSocLattice(capacity unit.Kwh, k int) socLattice {
	c := capacity.Float64()
	return socLattice{capacity: c, k: k, step: c / float64(k)}
}

func (l socLattice) levelOf(soc unit.Kwh) int {
	v := soc.Float64()
	if v <= 0 {
		return 0
	}
	if v >= l.capacity {
		return l.k
	}
	f := v / l.capacity
	level := int(f*float64(l.k) + 0.5)
	if level < 0 {
		level = 0
	}
	if level > l.k {
		level = l.k
	}
	return level
}

func (l socLattice) socOf(level int) unit.Kwh {
	if level <= 0 {
		return unit.ZeroKwh
	}
	if level >= l.k {
		return unit.MustKwh(l.capacity)
	}
	return unit.MustKwh(float64(level) / float64(l.k) * l.capacity)
}

func (l socLattice) levels() int { return l.k + 1 }

// simulateAt runs one segment's transition from a discretised SoC level
// and returns the resulting outcome plus its (unpenalised) cost and the
// successor level it rounds to.
func simulateAt(segmentIdx int, mode planmodel.Mode, lattice socLattice, level int, f simulate.SegmentForecastInput, bp battery.Params) (simulate.Outcome, int, unit.Gbp, error) {
	startSoC := lattice.socOf(level)
	o, err := simulate.SimulateSegment(segmentIdx, mode, f.Solar, f.Load, startSoC, bp)
	if err != nil {
		return simulate.Outcome{}, 0, unit.ZeroGbp, err
	}
	segCost := o.GridUsage.Mul(f.Price)
	return o, lattice.levelOf(o.EndSoC), segCost, nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return planerr.New(planerr.Cancelled, "optimiser cancelled: %v", ctx.Err())
	default:
		return nil
	}
}
