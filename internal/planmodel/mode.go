package planmodel

import "fmt"

// Mode is the inverter/router decision for one segment.
type Mode int

const (
	// ChargeSolarOnly routes solar exclusively to the battery; load is
	// served from the grid.
	ChargeSolarOnly Mode = iota
	// ChargeFromGridAndSolar charges from both solar and up to the
	// battery's grid-charge allowance; load is served from the grid.
	ChargeFromGridAndSolar
	// Discharge serves load from solar first, then the battery, then the
	// grid; solar surplus charges the battery.
	Discharge
)

// AllModes lists the three known mode variants in their declaration
// order. Optimisers iterate this slice rather than hardcoding the
// alphabet in more than one place.
var AllModes = [3]Mode{ChargeSolarOnly, ChargeFromGridAndSolar, Discharge}

func (m Mode) String() string {
	switch m {
	case ChargeSolarOnly:
		return "ChargeSolarOnly"
	case ChargeFromGridAndSolar:
		return "ChargeFromGridAndSolar"
	case Discharge:
		return "Discharge"
	default:
		return fmt.Sprintf("UnknownMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the three known variants.
func (m Mode) Valid() bool {
	return m == ChargeSolarOnly || m == ChargeFromGridAndSolar || m == Discharge
}

// tieBreakRank orders modes for deterministic tie-breaking in the graph
// optimiser: Discharge < ChargeSolarOnly < ChargeFromGridAndSolar.
func (m Mode) tieBreakRank() int {
	switch m {
	case Discharge:
		return 0
	case ChargeSolarOnly:
		return 1
	case ChargeFromGridAndSolar:
		return 2
	default:
		return 3
	}
}

// LessTieBreak reports whether m sorts before other under the
// deterministic tie-break order used when two candidate modes produce
// equal cost.
func (m Mode) LessTieBreak(other Mode) bool {
	return m.tieBreakRank() < other.tieBreakRank()
}
