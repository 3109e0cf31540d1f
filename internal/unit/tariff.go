package unit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ElectricityRate is a non-negative price per kWh of grid energy,
// denominated in GBP/kWh.
type ElectricityRate struct {
	d decimal.Decimal
}

// ZeroRate is the zero tariff: any energy priced at it costs nothing.
var ZeroRate = ElectricityRate{d: decimal.Zero}

// NewElectricityRate constructs a tariff. Negative rates are a
// construction error; tariffs published to the core are always >= 0.
func NewElectricityRate(gbpPerKwh float64) (ElectricityRate, error) {
	if gbpPerKwh < 0 {
		return ElectricityRate{}, fmt.Errorf("unit: negative tariff %g GBP/kWh", gbpPerKwh)
	}
	return ElectricityRate{d: decimal.NewFromFloat(gbpPerKwh)}, nil
}

// MustElectricityRate is NewElectricityRate for call sites that have
// already validated the input.
func MustElectricityRate(gbpPerKwh float64) ElectricityRate {
	t, err := NewElectricityRate(gbpPerKwh)
	if err != nil {
		panic(err)
	}
	return t
}

// Scale returns the tariff scaled by a dimensionless factor.
func (t ElectricityRate) Scale(factor float64) ElectricityRate {
	return ElectricityRate{d: t.d.Mul(decimal.NewFromFloat(factor))}
}

// mulEnergy returns the cost of consuming e kWh at this tariff.
func (t ElectricityRate) mulEnergy(e Kwh) Gbp {
	cost := t.d.Mul(decimal.NewFromFloat(e.Float64()))
	return Gbp{d: cost.Round(pence)}
}

func (t ElectricityRate) Float64() float64 {
	f, _ := t.d.Float64()
	return f
}

func (t ElectricityRate) String() string { return fmt.Sprintf("£%s/kWh", t.d.StringFixed(4)) }
