// Package timegrid exposes the canonical 48 half-hour segments that
// partition a planning day.
package timegrid

import "fmt"

// SegmentCount is the number of half-hour segments in a day.
const SegmentCount = 48

// HalfHourSegment is one 30-minute interval of a planning day, identified
// by its start hour and start minute (0 or 30).
type HalfHourSegment struct {
	HourStart   int
	MinuteStart int
}

// End returns the segment's end hour/minute.
func (s HalfHourSegment) End() (hour, minute int) {
	minute = s.MinuteStart + 30
	hour = s.HourStart
	if minute >= 60 {
		minute -= 60
		hour++
	}
	return hour % 24, minute
}

func (s HalfHourSegment) String() string {
	eh, em := s.End()
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.HourStart, s.MinuteStart, eh, em)
}

// Index returns the segment's position (0..47) in the canonical grid.
func (s HalfHourSegment) Index() int {
	half := 0
	if s.MinuteStart == 30 {
		half = 1
	}
	return s.HourStart*2 + half
}

var grid = buildGrid()

func buildGrid() [SegmentCount]HalfHourSegment {
	var g [SegmentCount]HalfHourSegment
	i := 0
	for hour := 0; hour < 24; hour++ {
		for _, minute := range [2]int{0, 30} {
			g[i] = HalfHourSegment{HourStart: hour, MinuteStart: minute}
			i++
		}
	}
	return g
}

// Segments returns the immutable, process-wide ordered list of all 48
// half-hour segments covering a day.
func Segments() [SegmentCount]HalfHourSegment { return grid }

// InHourRange returns the segments whose HourStart falls in [fromHour,
// toHour) (toHour exclusive, wrapping is not supported — callers split a
// wrapping range into two calls).
func InHourRange(fromHour, toHour int) []HalfHourSegment {
	var out []HalfHourSegment
	for _, s := range grid {
		if s.HourStart >= fromHour && s.HourStart < toHour {
			out = append(out, s)
		}
	}
	return out
}

// AtIndex returns the segment at the given 0..47 grid position.
func AtIndex(i int) (HalfHourSegment, error) {
	if i < 0 || i >= SegmentCount {
		return HalfHourSegment{}, fmt.Errorf("timegrid: index %d out of range [0,%d)", i, SegmentCount)
	}
	return grid[i], nil
}
