package optimise

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/simulate"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// GA is the genetic-algorithm optimiser (spec §4.I): a population of
// length-n mode sequences evolved by tournament selection, crossover
// and per-gene mutation, with elitism. All randomness flows from a
// single seeded source so a fixed seed reproduces a fixed plan; only
// the independent per-candidate fitness evaluation is parallelised
// (spec §5's "partition by index, reduce in index order").
type GA struct{}

// NewGA constructs the GA optimiser.
func NewGA() *GA { return &GA{} }

func (g *GA) Name() string { return "ga" }

type individual struct {
	genes   []planmodel.Mode
	fitness float64 // higher is better: -(cost + lambda*waste)
}

func randomGenes(rng *rand.Rand, n int) []planmodel.Mode {
	genes := make([]planmodel.Mode, n)
	for i := range genes {
		genes[i] = planmodel.AllModes[rng.Intn(len(planmodel.AllModes))]
	}
	return genes
}

func evaluateFitness(genes []planmodel.Mode, forecasts []simulate.SegmentForecastInput, initialSoC unit.Kwh, bp battery.Params, wastePenalty unit.ElectricityRate) (float64, error) {
	outcomes, err := simulate.SimulatePlan(genes, forecasts, initialSoC, bp)
	if err != nil {
		return 0, err
	}
	total := unit.ZeroGbp
	wasted := unit.ZeroKwh
	for i, o := range outcomes {
		total = total.Add(o.GridUsage.Mul(forecasts[i].Price))
		wasted = wasted.Add(o.WastedSolar)
	}
	penalty := wasted.Mul(wastePenalty)
	return -(total.Float64() + penalty.Float64()), nil
}

// evaluatePopulation fitness-scores every individual concurrently,
// writing into each individual's own slot so reduction order never
// depends on goroutine completion order.
func evaluatePopulation(ctx context.Context, pop []individual, forecasts []simulate.SegmentForecastInput, initialSoC unit.Kwh, bp battery.Params, wastePenalty unit.ElectricityRate) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range pop {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := evaluateFitness(pop[i].genes, forecasts, initialSoC, bp, wastePenalty)
			if err != nil {
				return err
			}
			pop[i].fitness = f
			return nil
		})
	}
	return g.Wait()
}

func tournamentSelect(rng *rand.Rand, pop []individual, size int) individual {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < size; i++ {
		c := pop[rng.Intn(len(pop))]
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}

func uniformCrossover(rng *rand.Rand, a, b individual, rate float64) []planmodel.Mode {
	n := len(a.genes)
	child := make([]planmodel.Mode, n)
	if rng.Float64() >= rate {
		copy(child, a.genes)
		return child
	}
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.5 {
			child[i] = a.genes[i]
		} else {
			child[i] = b.genes[i]
		}
	}
	return child
}

func mutate(rng *rand.Rand, genes []planmodel.Mode, rate float64) {
	for i := range genes {
		if rng.Float64() < rate {
			genes[i] = planmodel.AllModes[rng.Intn(len(planmodel.AllModes))]
		}
	}
}

func cloneIndividual(src individual) individual {
	genes := make([]planmodel.Mode, len(src.genes))
	copy(genes, src.genes)
	return individual{genes: genes, fitness: src.fitness}
}

func (g *GA) Optimise(ctx context.Context, forecasts []simulate.SegmentForecastInput, initialSoC unit.Kwh, bp battery.Params, params Params, sink diag.Sink) ([]planmodel.Mode, error) {
	sink = diag.OrDiscard(sink)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := len(forecasts)
	rng := rand.New(rand.NewSource(params.Seed))

	pop := make([]individual, params.Population)
	for i := range pop {
		pop[i] = individual{genes: randomGenes(rng, n)}
	}
	if err := evaluatePopulation(ctx, pop, forecasts, initialSoC, bp, params.WastePenalty); err != nil {
		return nil, err
	}

	rankByFitnessDesc(pop)

	for gen := 0; gen < params.Generations; gen++ {
		if err := checkCancelled(ctx); err != nil {
			return nil, err
		}

		next := make([]individual, 0, params.Population)
		for i := 0; i < params.Elitism && i < len(pop); i++ {
			next = append(next, cloneIndividual(pop[i]))
		}
		for len(next) < params.Population {
			parentA := tournamentSelect(rng, pop, params.TournamentSize)
			parentB := tournamentSelect(rng, pop, params.TournamentSize)
			childGenes := uniformCrossover(rng, parentA, parentB, params.CrossoverRate)
			mutate(rng, childGenes, params.MutationRate)
			next = append(next, individual{genes: childGenes})
		}

		if err := evaluatePopulation(ctx, next, forecasts, initialSoC, bp, params.WastePenalty); err != nil {
			return nil, err
		}
		rankByFitnessDesc(next)
		pop = next

		sink.Printf("ga: generation %d/%d best-fitness=%.4f", gen+1, params.Generations, pop[0].fitness)
	}

	return pop[0].genes, nil
}

// rankByFitnessDesc sorts in place, highest fitness first, breaking ties
// by gene sequence so that selecting pop[0] is deterministic for a fixed
// seed even when two individuals tie exactly.
func rankByFitnessDesc(pop []individual) {
	sortIndividuals(pop)
}
