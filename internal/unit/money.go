package unit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// pence is the fixed fractional precision money is rounded to: GBP has
// two decimal places and comparisons must not drift with binary floats.
const pence = 2

// Gbp is a signed monetary amount in pounds sterling, backed by a fixed-
// precision decimal so that equality and ordering are exact.
type Gbp struct {
	d decimal.Decimal
}

// ZeroGbp is the additive identity.
var ZeroGbp = Gbp{d: decimal.Zero}

// NewGbp constructs a money value from a float, rounding to pence.
func NewGbp(v float64) Gbp {
	return Gbp{d: decimal.NewFromFloat(v).Round(pence)}
}

// Float64 returns the raw pounds value.
func (g Gbp) Float64() float64 {
	f, _ := g.d.Float64()
	return f
}

// Add returns g+other.
func (g Gbp) Add(other Gbp) Gbp {
	return Gbp{d: g.d.Add(other.d).Round(pence)}
}

// Scale returns g scaled by a dimensionless factor.
func (g Gbp) Scale(factor float64) Gbp {
	return Gbp{d: g.d.Mul(decimal.NewFromFloat(factor)).Round(pence)}
}

// Equal reports exact decimal equality (no floating-point tolerance).
func (g Gbp) Equal(other Gbp) bool { return g.d.Equal(other.d) }

// Less reports whether g is strictly less than other.
func (g Gbp) Less(other Gbp) bool { return g.d.LessThan(other.d) }

// SumGbp sums a sequence of money values, returning zero for an empty
// sequence.
func SumGbp(vs ...Gbp) Gbp {
	total := ZeroGbp
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}

func (g Gbp) String() string { return fmt.Sprintf("£%s", g.d.StringFixed(pence)) }
