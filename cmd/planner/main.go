package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/battery"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/builder"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/config"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/cost"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/diag"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/fixtureforecast"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/ledger"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/optimise"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/planmodel"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/rank"
	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/unit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "plan":
		cmdPlan(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  planner plan --config config.yaml --forecast forecast.yaml --out plan.csv")
	fmt.Println("  planner compare --config config.yaml --forecast forecast.yaml")
}

func cmdPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	forecastPath := fs.String("forecast", "", "Path to YAML forecast fixture")
	outPath := fs.String("out", "results/plan.csv", "Output CSV path")
	initialSoC := fs.Float64("initial-soc", -1, "Initial SoC in kWh (default: battery min, i.e. 0)")
	date := fs.String("date", time.Now().Format("2006-01-02"), "Plan date, YYYY-MM-DD")
	_ = fs.Parse(args)

	if *cfgPath == "" || *forecastPath == "" {
		fmt.Println("--config and --forecast are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	bp, err := cfg.Battery.ToParams()
	if err != nil {
		panic(err)
	}
	opt, err := optimise.ByName(cfg.Run.Optimiser)
	if err != nil {
		panic(err)
	}
	params, err := cfg.OptimiseParams()
	if err != nil {
		panic(err)
	}

	src, err := fixtureforecast.Load(*forecastPath)
	if err != nil {
		panic(err)
	}

	soc := unit.ZeroKwh
	if *initialSoC >= 0 {
		soc, err = unit.NewKwh(*initialSoC)
		if err != nil {
			panic(err)
		}
	}

	d, err := time.Parse("2006-01-02", *date)
	if err != nil {
		panic(err)
	}

	b := &builder.Builder{
		Forecasts: src.Set(battery.Predictor{Params: bp}),
		Battery:   bp,
		Optimiser: opt,
		Params:    params,
		Sink:      diag.Printer{Write: func(s string) { fmt.Println(s) }},
	}

	plan, err := b.CreatePlan(context.Background(), d, soc)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := ledger.WritePlanCSV(f, *plan); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(plan.Rows), *outPath)
	fmt.Printf("Total cost=%s\n", cost.Plan(*plan))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config (battery only; optimiser is overridden)")
	forecastPath := fs.String("forecast", "", "Path to YAML forecast fixture")
	date := fs.String("date", time.Now().Format("2006-01-02"), "Plan date, YYYY-MM-DD")
	_ = fs.Parse(args)

	if *cfgPath == "" || *forecastPath == "" {
		fmt.Println("--config and --forecast are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	bp, err := cfg.Battery.ToParams()
	if err != nil {
		panic(err)
	}
	params, err := cfg.OptimiseParams()
	if err != nil {
		panic(err)
	}
	src, err := fixtureforecast.Load(*forecastPath)
	if err != nil {
		panic(err)
	}
	d, err := time.Parse("2006-01-02", *date)
	if err != nil {
		panic(err)
	}

	plans := map[string]planmodel.Plan{}
	for _, name := range []string{"graph", "dp", "ga"} {
		opt, err := optimise.ByName(name)
		if err != nil {
			panic(err)
		}
		b := &builder.Builder{
			Forecasts: src.Set(battery.Predictor{Params: bp}),
			Battery:   bp,
			Optimiser: opt,
			Params:    params,
			Sink:      diag.Discard{},
		}
		plan, err := b.CreatePlan(context.Background(), d, unit.ZeroKwh)
		if err != nil {
			panic(err)
		}
		plans[name] = *plan
	}

	ranked := rank.ByCost(plans)
	fmt.Printf("%-4s %-12s %-12s\n", "rank", "optimiser", "cost")
	for i, r := range ranked {
		fmt.Printf("%-4d %-12s £%.2f\n", i+1, r.OptimiserName, r.Cost)
	}
}
