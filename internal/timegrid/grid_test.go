package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments_HasFortyEight(t *testing.T) {
	g := Segments()
	assert.Len(t, g, SegmentCount)
	assert.Equal(t, HalfHourSegment{0, 0}, g[0])
	assert.Equal(t, HalfHourSegment{23, 30}, g[SegmentCount-1])
}

func TestSegments_AreOrderedAndIndexable(t *testing.T) {
	g := Segments()
	for i, s := range g {
		assert.Equal(t, i, s.Index())
	}
}

func TestHalfHourSegment_End(t *testing.T) {
	s := HalfHourSegment{HourStart: 23, MinuteStart: 30}
	h, m := s.End()
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)
}

func TestInHourRange(t *testing.T) {
	segs := InHourRange(10, 12)
	assert.Len(t, segs, 4)
	for _, s := range segs {
		assert.GreaterOrEqual(t, s.HourStart, 10)
		assert.Less(t, s.HourStart, 12)
	}
}

func TestAtIndex_OutOfRange(t *testing.T) {
	_, err := AtIndex(-1)
	require.Error(t, err)
	_, err = AtIndex(SegmentCount)
	require.Error(t, err)
}

func TestAtIndex_Valid(t *testing.T) {
	s, err := AtIndex(3)
	require.NoError(t, err)
	assert.Equal(t, HalfHourSegment{1, 30}, s)
}
