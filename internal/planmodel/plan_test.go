package planmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

func chainedPlan(initial unit.Kwh) Plan {
	var p Plan
	soc := initial
	for i := range p.Rows {
		end := unit.MustKwh(soc.Float64() + 0.1)
		p.Rows[i].StartSoC = soc
		p.Rows[i].EndSoC = end
		soc = end
	}
	return p
}

func TestValidateChaining_AcceptsConsistentPlan(t *testing.T) {
	p := chainedPlan(unit.ZeroKwh)
	require.NoError(t, p.ValidateChaining(unit.ZeroKwh))
}

func TestValidateChaining_RejectsBrokenChain(t *testing.T) {
	p := chainedPlan(unit.ZeroKwh)
	p.Rows[5].EndSoC = unit.MustKwh(999)
	require.Error(t, p.ValidateChaining(unit.ZeroKwh))
}

func TestValidateChaining_RejectsWrongInitialSoC(t *testing.T) {
	p := chainedPlan(unit.ZeroKwh)
	require.Error(t, p.ValidateChaining(unit.MustKwh(5)))
}

func TestValidatePostConditions_RejectsOverCapacity(t *testing.T) {
	p := chainedPlan(unit.ZeroKwh)
	p.Rows[0].EndSoC = unit.MustKwh(100)
	p.Rows[1].StartSoC = unit.MustKwh(100)
	require.Error(t, p.ValidatePostConditions(unit.MustKwh(10)))
}

func TestValidatePostConditions_AcceptsNonNegativeGridUsage(t *testing.T) {
	// ActualGridUsage is a unit.Kwh, which cannot itself be negative by
	// construction; this asserts the invariant holds trivially for any
	// validly-constructed plan.
	p := chainedPlan(unit.ZeroKwh)
	require.NoError(t, p.ValidatePostConditions(unit.MustKwh(10)))
}

func TestModes_ReturnsModeSequence(t *testing.T) {
	var p Plan
	p.Rows[0].Mode = Discharge
	p.Rows[1].Mode = ChargeSolarOnly
	modes := p.Modes()
	assert.Equal(t, Discharge, modes[0])
	assert.Equal(t, ChargeSolarOnly, modes[1])
}
