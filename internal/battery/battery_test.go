package battery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

func TestParams_Validate_RejectsNonPositiveCapacity(t *testing.T) {
	p := Params{Capacity: unit.ZeroKwh, GridChargePerSegment: unit.ZeroKwh}
	require.Error(t, p.Validate())
}

func TestParams_Validate_AcceptsSaneValues(t *testing.T) {
	p := Params{Capacity: unit.MustKwh(10), GridChargePerSegment: unit.MustKwh(2)}
	require.NoError(t, p.Validate())
}

func TestPredict_NoOverflow(t *testing.T) {
	newSoC, wastage := Predict(unit.MustKwh(10), unit.MustKwh(3), unit.MustKwh(4))
	assert.Equal(t, 7.0, newSoC.Float64())
	assert.Equal(t, 0.0, wastage.Float64())
}

func TestPredict_OverflowIsWasted(t *testing.T) {
	newSoC, wastage := Predict(unit.MustKwh(10), unit.MustKwh(8), unit.MustKwh(5))
	assert.Equal(t, 10.0, newSoC.Float64())
	assert.Equal(t, 3.0, wastage.Float64())
}

func TestPredict_ExactlyFillsCapacity(t *testing.T) {
	newSoC, wastage := Predict(unit.MustKwh(10), unit.MustKwh(6), unit.MustKwh(4))
	assert.Equal(t, 10.0, newSoC.Float64())
	assert.Equal(t, 0.0, wastage.Float64())
}

func TestPredictor_Predict_PropagatesValidationError(t *testing.T) {
	p := Predictor{Params: Params{Capacity: unit.ZeroKwh}}
	_, _, err := p.Predict(unit.ZeroKwh, unit.MustKwh(1))
	require.Error(t, err)
}

func TestPredictor_Predict_MatchesPackageFunc(t *testing.T) {
	p := Predictor{Params: Params{Capacity: unit.MustKwh(10), GridChargePerSegment: unit.MustKwh(2)}}
	newSoC, wastage, err := p.Predict(unit.MustKwh(8), unit.MustKwh(5))
	require.NoError(t, err)
	assert.Equal(t, 10.0, newSoC.Float64())
	assert.Equal(t, 3.0, wastage.Float64())
}
