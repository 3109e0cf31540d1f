package optimise

import "github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"

// ByName constructs the optimiser named by the YAML config's
// run.optimiser field: "graph", "dp" or "ga". This is the sealed set of
// variants spec §9 calls for, dispatched by name instead of by an
// inheritance graph.
func ByName(name string) (Optimiser, error) {
	switch name {
	case "graph":
		return NewGraph(), nil
	case "dp":
		return NewDP(), nil
	case "ga":
		return NewGA(), nil
	default:
		return nil, planerr.New(planerr.InvalidInput, "unknown optimiser %q, want graph|dp|ga", name)
	}
}
