package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/graubenh/mathacademy-dashboard/cmd/samplegen/engine"
)

func main() {
	scenario := flag.String("scenario", "steady", "Scenario to generate: steady, grind, journey")
	days := flag.Int("days", 30, "Number of calendar days to cover")
	out := flag.String("out", "sample-export.txt", "Output file for the generated export")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Days:     *days,
		Now:      time.Now(),
		Seed:     *seed,
	}

	fmt.Printf("Generating scenario '%s' (%d days) to %s...\n", cfg.Scenario, cfg.Days, *out)

	text := engine.Generate(cfg)
	if err := engine.Save(*out, text); err != nil {
		fmt.Printf("Failed to save sample export: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
