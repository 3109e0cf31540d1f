package optimise

import (
	"container/heap"
	"context"
	"math"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/simulate"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Graph is the exhaustive shortest-path optimiser (spec §4.G): a layered
// DAG over (segment, discretised SoC level), solved with Dijkstra via a
// binary heap. Grounded on other_examples' orange-dot-mapf-het, which
// runs a container/heap priority queue over a similarly layered search
// space.
type Graph struct{}

// NewGraph constructs the graph/shortest-path optimiser.
func NewGraph() *Graph { return &Graph{} }

func (g *Graph) Name() string { return "graph" }

// node identifies a point in the layered DAG: segment index t (0..n,
// where n is the terminal layer) and discretised SoC level.
type node struct {
	t     int
	level int
}

type heapItem struct {
	n    node
	dist float64
}

type priorityQueue []heapItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	// Deterministic tie-break on queue order: prefer the earlier segment,
	// then the lower SoC level, so pop order never depends on push order.
	if pq[i].n.t != pq[j].n.t {
		return pq[i].n.t < pq[j].n.t
	}
	return pq[i].n.level < pq[j].n.level
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)   { *pq = append(*pq, x.(heapItem)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

type incoming struct {
	fromLevel int
	mode      planmodel.Mode
	hasValue  bool
}

func (g *Graph) Optimise(ctx context.Context, forecasts []simulate.SegmentForecastInput, initialSoC unit.Kwh, bp battery.Params, params Params, sink diag.Sink) ([]planmodel.Mode, error) {
	sink = diag.OrDiscard(sink)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := len(forecasts)
	lattice := newSocLattice(bp.Capacity, params.K)
	levels := lattice.levels()

	dist := make([][]float64, n+1)
	in := make([][]incoming, n+1)
	for t := 0; t <= n; t++ {
		dist[t] = make([]float64, levels)
		in[t] = make([]incoming, levels)
		for s := range dist[t] {
			dist[t][s] = math.Inf(1)
		}
	}

	startLevel := lattice.levelOf(initialSoC)
	dist[0][startLevel] = 0

	pq := &priorityQueue{{n: node{t: 0, level: startLevel}, dist: 0}}
	heap.Init(pq)

	visited := make([][]bool, n+1)
	for t := range visited {
		visited[t] = make([]bool, levels)
	}

	var terminal *node
	lastCheckedLayer := -1
	for pq.Len() > 0 {
		item := heap.Pop(pq).(heapItem)
		cur := item.n
		if visited[cur.t][cur.level] {
			continue
		}
		visited[cur.t][cur.level] = true

		if cur.t == n {
			terminal = &cur
			break
		}

		if cur.t != lastCheckedLayer {
			lastCheckedLayer = cur.t
			if err := checkCancelled(ctx); err != nil {
				return nil, err
			}
		}

		for _, m := range planmodel.AllModes {
			outcome, nextLevel, segCost, err := simulateAt(cur.t, m, lattice, cur.level, forecasts[cur.t], bp)
			if err != nil {
				return nil, err
			}
			weight := segCost.Float64() + params.WastePenalty.Float64()*outcome.WastedSolar.Float64()
			nd := dist[cur.t][cur.level] + weight
			better := nd < dist[cur.t+1][nextLevel]-tieEpsilon
			tie := !better && nd < dist[cur.t+1][nextLevel]+tieEpsilon &&
				(!in[cur.t+1][nextLevel].hasValue || m.LessTieBreak(in[cur.t+1][nextLevel].mode))
			if better || tie {
				dist[cur.t+1][nextLevel] = nd
				in[cur.t+1][nextLevel] = incoming{fromLevel: cur.level, mode: m, hasValue: true}
				heap.Push(pq, heapItem{n: node{t: cur.t + 1, level: nextLevel}, dist: nd})
			}
		}
	}

	if terminal == nil {
		// The terminal layer is always reached: each mode always produces
		// some next level, and with an empty forecast slice the start
		// node is itself terminal. This branch is a defensive fallback.
		return []planmodel.Mode{}, nil
	}

	sink.Printf("graph: shortest path cost %.4f found at terminal level %d", dist[terminal.t][terminal.level], terminal.level)

	modes := make([]planmodel.Mode, n)
	level := terminal.level
	for t := n; t > 0; t-- {
		step := in[t][level]
		modes[t-1] = step.mode
		level = step.fromLevel
	}
	return modes, nil
}
