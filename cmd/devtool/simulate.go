package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/osse101/SkinTrade_Go/configs"
	"github.com/osse101/SkinTrade_Go/internal/cases"
	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/roulette"
	"github.com/osse101/SkinTrade_Go/internal/utils"
	"github.com/osse101/SkinTrade_Go/internal/validation"
)

// SimulateCommand opens cases offline and compares observed drop rates with the configured chances.
type SimulateCommand struct{}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Simulate case openings and report observed drop rates (-case, -n, -seed)"
}

func (c *SimulateCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	caseID := fs.String("case", "", "case ID to simulate (default: every case)")
	n := fs.Int("n", 100000, "openings per case")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	casesPath := fs.String("cases", os.Getenv("CASES_PATH"), "cases.json override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", *n)
	}

	registry, err := cases.Load(*casesPath, configs.FS, validation.NewSchemaValidator(configs.FS))
	if err != nil {
		return err
	}

	ctx := context.Background()
	targets := registry.List(ctx)
	if *caseID != "" {
		cs, err := registry.Get(ctx, *caseID)
		if err != nil {
			return fmt.Errorf("case %q: %w", *caseID, err)
		}
		targets = []domain.Case{cs}
	}

	PrintHeader(fmt.Sprintf("Simulating %d openings per case (seed %d)", *n, *seed))
	rnd := utils.SeededFloat(*seed)

	for _, cs := range targets {
		bar := progressbar.Default(int64(*n), cs.Name)
		report, err := simulateDraws(cs.Items, *n, rnd, func() { _ = bar.Add(1) })
		_ = bar.Close()
		if err != nil {
			return fmt.Errorf("case %q: %w", cs.ID, err)
		}
		printReport(cs, report)
	}
	return nil
}

// drawReport is the outcome of a batch of simulated openings.
type drawReport struct {
	Total     int
	Counts    map[string]int
	Fallbacks int
	Returned  int
}

// simulateDraws runs n draws over items. onDraw may be nil.
func simulateDraws(items []domain.CaseItem, n int, rnd func() float64, onDraw func()) (drawReport, error) {
	report := drawReport{Counts: make(map[string]int, len(items))}
	for i := 0; i < n; i++ {
		res, err := roulette.Draw(items, rnd)
		if err != nil {
			return report, err
		}
		report.Total++
		report.Counts[res.Item.ID]++
		report.Returned += res.Item.Rarity.SaleValue()
		if res.Fallback {
			report.Fallbacks++
		}
		if onDraw != nil {
			onDraw()
		}
	}
	return report, nil
}

// fallbackNote describes the draws that landed above the chance total, or returns "".
func (r drawReport) fallbackNote() string {
	if r.Fallbacks == 0 {
		return ""
	}
	return fmt.Sprintf("%d draws fell back to the first item (chances sum below 100)", r.Fallbacks)
}

func printReport(cs domain.Case, report drawReport) {
	fmt.Printf("\n%s (%s), price %d\n", cs.Name, cs.ID, cs.Price)
	fmt.Printf("  %-28s %-10s %10s %10s\n", "item", "rarity", "chance", "observed")
	for _, item := range cs.Items {
		observed := utils.Percent(report.Counts[item.ID], report.Total)
		fmt.Printf("  %-28s %-10s %9.2f%% %9.2f%%\n", item.Name, item.Rarity, item.Chance, observed)
	}
	if note := report.fallbackNote(); note != "" {
		PrintWarning("%s", note)
	}

	spent := cs.Price * report.Total
	PrintInfo("Average sale value per opening: %.1f (price %d, return %.1f%%)",
		float64(report.Returned)/float64(report.Total), cs.Price, utils.Percent(report.Returned, spent))
}
