// Package fixtureforecast is a flat-file forecast source for the CLI
// demo path only. It is not part of the core's contract: spec.md places
// ingestion of real weather/tariff feeds and ML prediction models
// outside the core as external collaborators, and this package is
// nothing more than the thinnest possible stand-in for one, analogous
// to the teacher's data.LoadGridStatusJSON reading a flat JSON fixture.
package fixtureforecast

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/forecast"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/timegrid"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// Document is the YAML shape of a fixture file: one flat 48-length
// array per forecast quantity, index-aligned with timegrid.Segments().
type Document struct {
	SolarKwh       [timegrid.SegmentCount]float64 `yaml:"solar_kwh"`
	LoadKwh        [timegrid.SegmentCount]float64 `yaml:"load_kwh"`
	PriceGbpPerKwh [timegrid.SegmentCount]float64 `yaml:"price_gbp_per_kwh"`
}

// Source implements forecast.Solar, forecast.Load and forecast.Price
// over an in-memory Document, ignoring dayOfYear/date since a fixture
// covers exactly one day.
type Source struct {
	doc Document
}

// Load reads a fixture file from path.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtureforecast: reading %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixtureforecast: parsing %s: %w", path, err)
	}
	return &Source{doc: doc}, nil
}

func (s *Source) Solar(_ int, segment timegrid.HalfHourSegment) (unit.Kwh, error) {
	return unit.NewKwh(s.doc.SolarKwh[segment.Index()])
}

func (s *Source) Load(_ int, segment timegrid.HalfHourSegment) (unit.Kwh, error) {
	return unit.NewKwh(s.doc.LoadKwh[segment.Index()])
}

func (s *Source) Price(_ time.Time, segment timegrid.HalfHourSegment) (unit.ElectricityRate, error) {
	return unit.NewElectricityRate(s.doc.PriceGbpPerKwh[segment.Index()])
}

// Set builds a forecast.Set backed by this fixture, using pred for the
// battery port.
func (s *Source) Set(pred forecast.BatteryPredictor) forecast.Set {
	return forecast.Set{Solar: s, Load: s, Price: s, Battery: pred}
}
