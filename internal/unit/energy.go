// Package unit provides dimensionally-safe value types for the planner:
// energy (kWh), money (GBP) and tariff rates (GBP/kWh). Construction
// rejects values that would violate the dimension's invariants so that
// downstream code never has to defensively re-check them.
package unit

import "fmt"

// Kwh is a non-negative quantity of energy in kilowatt-hours.
type Kwh struct {
	v float64
}

// ZeroKwh is the additive identity.
var ZeroKwh = Kwh{}

// NewKwh constructs an energy value. Negative input is a construction
// error: the simulator never produces negative energy, so a negative
// value reaching here means an upstream bug or bad forecast data.
func NewKwh(v float64) (Kwh, error) {
	if v < 0 {
		return Kwh{}, fmt.Errorf("unit: negative energy %g kWh", v)
	}
	return Kwh{v: v}, nil
}

// MustKwh is NewKwh for call sites that have already validated v >= 0
// (e.g. literal test fixtures).
func MustKwh(v float64) Kwh {
	k, err := NewKwh(v)
	if err != nil {
		panic(err)
	}
	return k
}

// Float64 returns the raw kWh value.
func (k Kwh) Float64() float64 { return k.v }

// Add returns k+other.
func (k Kwh) Add(other Kwh) Kwh {
	return Kwh{v: k.v + other.v}
}

// Sub returns k-other, saturating at zero: energy cannot go negative as
// the result of consuming more than is available.
func (k Kwh) Sub(other Kwh) Kwh {
	d := k.v - other.v
	if d < 0 {
		d = 0
	}
	return Kwh{v: d}
}

// Scale returns k scaled by a dimensionless factor. A negative factor
// is clamped to zero for the same reason Sub saturates.
func (k Kwh) Scale(factor float64) Kwh {
	v := k.v * factor
	if v < 0 {
		v = 0
	}
	return Kwh{v: v}
}

// Mul returns the money cost of this energy at the given tariff.
func (k Kwh) Mul(t ElectricityRate) Gbp {
	return t.mulEnergy(k)
}

// Less reports whether k is strictly less than other.
func (k Kwh) Less(other Kwh) bool { return k.v < other.v }

// SumKwh sums a sequence of energy values, returning zero for an empty
// sequence.
func SumKwh(vs ...Kwh) Kwh {
	total := ZeroKwh
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}

func (k Kwh) String() string { return fmt.Sprintf("%.4fkWh", k.v) }
