// Package config loads the YAML-driven battery and run configuration
// that selects an optimiser and its hyperparameters. Adapted from the
// teacher's internal/config/config.go: Load -> Validate -> construct
// domain values, surfacing the constructor's own errors rather than
// duplicating validation here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/optimise"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planerr"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

// BatteryConfig is the YAML-facing shape of battery.Params.
type BatteryConfig struct {
	CapacityKwh          float64 `yaml:"capacity_kwh"`
	GridChargeKwhPerSlot float64 `yaml:"grid_charge_kwh_per_slot"`
}

// ToParams converts the YAML shape into battery.Params.
func (b BatteryConfig) ToParams() (battery.Params, error) {
	capacity, err := unit.NewKwh(b.CapacityKwh)
	if err != nil {
		return battery.Params{}, planerr.Wrap(planerr.InvalidInput, -1, err)
	}
	gridCharge, err := unit.NewKwh(b.GridChargeKwhPerSlot)
	if err != nil {
		return battery.Params{}, planerr.Wrap(planerr.InvalidInput, -1, err)
	}
	p := battery.Params{Capacity: capacity, GridChargePerSegment: gridCharge}
	if err := p.Validate(); err != nil {
		return battery.Params{}, err
	}
	return p, nil
}

// RunConfig selects the optimiser and carries its hyperparameters.
type RunConfig struct {
	Optimiser string         `yaml:"optimiser"`
	Params    map[string]any `yaml:"params"`
}

// Config is the top-level YAML document.
type Config struct {
	Battery BatteryConfig `yaml:"battery"`
	Run     RunConfig     `yaml:"run"`
}

// Load reads and parses a YAML config file, then validates it.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUnchecked reads and parses a YAML config file without validating
// it, for callers that want to merge overrides in before validation.
func LoadUnchecked(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the config is complete enough to build an optimiser
// and battery parameters from.
func (c *Config) Validate() error {
	if _, err := c.Battery.ToParams(); err != nil {
		return err
	}
	switch c.Run.Optimiser {
	case "graph", "dp", "ga":
	default:
		return planerr.New(planerr.InvalidInput, "unknown optimiser %q, want graph|dp|ga", c.Run.Optimiser)
	}
	return nil
}

// OptimiseParams converts the run config's loosely-typed params map into
// optimise.Params, starting from optimise.DefaultParams() and overriding
// only the keys present in YAML.
func (c *Config) OptimiseParams() (optimise.Params, error) {
	p := optimise.DefaultParams()
	for key, raw := range c.Run.Params {
		switch key {
		case "k":
			p.K = int(toFloat(raw))
		case "population":
			p.Population = int(toFloat(raw))
		case "generations":
			p.Generations = int(toFloat(raw))
		case "seed":
			p.Seed = int64(toFloat(raw))
		case "tournament_size":
			p.TournamentSize = int(toFloat(raw))
		case "crossover_rate":
			p.CrossoverRate = toFloat(raw)
		case "mutation_rate":
			p.MutationRate = toFloat(raw)
		case "elitism":
			p.Elitism = int(toFloat(raw))
		case "waste_penalty_gbp_per_kwh":
			rate, err := unit.NewElectricityRate(toFloat(raw))
			if err != nil {
				return optimise.Params{}, planerr.Wrap(planerr.InvalidInput, -1, err)
			}
			p.WastePenalty = rate
		default:
			return optimise.Params{}, planerr.New(planerr.InvalidInput, "unknown run param %q", key)
		}
	}
	if err := p.Validate(); err != nil {
		return optimise.Params{}, err
	}
	return p, nil
}

// MergeBattery overrides fields of c.Battery with any non-zero fields of
// override, mirroring the teacher's override-merge pattern for CLI flags
// layered on top of a config file.
func (c *Config) MergeBattery(override BatteryConfig) {
	if override.CapacityKwh != 0 {
		c.Battery.CapacityKwh = override.CapacityKwh
	}
	if override.GridChargeKwhPerSlot != 0 {
		c.Battery.GridChargeKwhPerSlot = override.GridChargeKwhPerSlot
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	default:
		return 0
	}
}
