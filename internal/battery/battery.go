// Package battery implements the core's battery model: a deterministic,
// stateless predictor with no efficiency loss. Predictor implements the
// forecast.BatteryPredictor port; the simulator calls the package-level
// Predict function directly, so it always uses this lossless model.
package battery

import (
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Params are the battery's planning-run-constant parameters.
type Params struct {
	// Capacity is the maximum energy the battery can hold.
	Capacity unit.Kwh
	// GridChargePerSegment is the maximum energy the battery will accept
	// from the grid during one segment when in a grid-charging mode.
	GridChargePerSegment unit.Kwh
}

// Validate checks the parameters are usable for a planning run.
func (p Params) Validate() error {
	if p.Capacity.Float64() <= 0 {
		return planerr.New(planerr.InvalidInput, "battery capacity must be positive, got %s", p.Capacity)
	}
	if p.GridChargePerSegment.Float64() < 0 {
		return planerr.New(planerr.InvalidInput, "battery grid charge per segment must be non-negative, got %s", p.GridChargePerSegment)
	}
	return nil
}

// Predictor is the reference, lossless implementation of
// forecast.BatteryPredictor.
type Predictor struct {
	Params Params
}

// Predict returns the battery's new state of charge and any wastage
// after attempting to store availableChargeEnergy on top of startSoC.
//
//	new_soc = min(capacity, start_soc+available_charge_energy)
//	wastage = max(0, start_soc+available_charge_energy-capacity)
func Predict(capacity, startSoC, availableChargeEnergy unit.Kwh) (newSoC, wastage unit.Kwh) {
	attempted := startSoC.Float64() + availableChargeEnergy.Float64()
	newSoCv := attempted
	if newSoCv > capacity.Float64() {
		newSoCv = capacity.Float64()
	}
	if newSoCv < 0 {
		newSoCv = 0
	}
	wastedv := attempted - capacity.Float64()
	if wastedv < 0 {
		wastedv = 0
	}
	return unit.MustKwh(newSoCv), unit.MustKwh(wastedv)
}

// Predict implements forecast.BatteryPredictor using p.Params.
func (p Predictor) Predict(startSoC, availableChargeEnergy unit.Kwh) (unit.Kwh, unit.Kwh, error) {
	if err := p.Params.Validate(); err != nil {
		return unit.ZeroKwh, unit.ZeroKwh, err
	}
	newSoC, wastage := Predict(p.Params.Capacity, startSoC, availableChargeEnergy)
	return newSoC, wastage, nil
}
