package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

func TestSegment_ZeroPriceYieldsZeroCost(t *testing.T) {
	c := Segment(unit.ZeroRate, unit.MustKwh(100))
	assert.True(t, c.Equal(unit.ZeroGbp))
}

func TestSegment(t *testing.T) {
	c := Segment(unit.MustElectricityRate(4), unit.MustKwh(2))
	assert.True(t, c.Equal(unit.NewGbp(8)))
}

func TestRows_SumsAcrossSegments(t *testing.T) {
	prices := []unit.ElectricityRate{unit.MustElectricityRate(2), unit.MustElectricityRate(3)}
	usages := []unit.Kwh{unit.MustKwh(1), unit.MustKwh(4)}
	total := Rows(prices, usages)
	assert.True(t, total.Equal(unit.NewGbp(2+12)))
}
