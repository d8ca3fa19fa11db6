package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"searchlab/pkg/bench"
	"searchlab/pkg/config"
	"searchlab/pkg/generator"
	"searchlab/pkg/monitor"
	"searchlab/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (empty = defaults)")
	verify := flag.Bool("verify", true, "cross-check all strategies before timing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gen := generator.New(cfg.Bench.Seed)
	gen.NameDivisor = cfg.Data.NameDivisor
	gen.ValueMax = cfg.Data.ValueMax

	stats := monitor.NewRunStats()
	suite := bench.NewSuite(gen, cfg.Bench.Queries, stats)

	if *verify {
		records := gen.Records(2000)
		keys := gen.SampleKeys(records, cfg.Bench.Queries)
		if err := bench.Verify(records, keys); err != nil {
			log.Fatalf("Strategy verification failed: %v", err)
		}
		fmt.Println("All strategies agree on a 2,000-record probe batch.")
	}

	var results []bench.Result
	for _, size := range cfg.Bench.Sizes {
		fmt.Printf("Generating %s records...\n", humanize.Comma(int64(size)))
		res, err := suite.Run(size)
		if err != nil {
			log.Fatalf("Benchmark run failed for size %d: %v", size, err)
		}
		results = append(results, res)

		fmt.Printf("n=%s", humanize.Comma(int64(res.Size)))
		for _, m := range res.Measures {
			fmt.Printf("  %s=%sns", m.Strategy, humanize.Comma(m.AvgNs))
			if m.Collisions >= 0 {
				fmt.Printf(" (coll=%s)", humanize.Comma(m.Collisions))
			}
		}
		fmt.Println()
	}

	f, err := os.Create(cfg.Output.CSV)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", cfg.Output.CSV, err)
	}
	if err := bench.WriteCSV(f, results); err != nil {
		f.Close()
		log.Fatalf("Failed to write CSV: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", cfg.Output.CSV, err)
	}
	fmt.Printf("Results written to %s\n", cfg.Output.CSV)

	if cfg.Output.DB != "" {
		db, err := storage.OpenResultDB(cfg.Output.DB)
		if err != nil {
			log.Fatalf("Failed to open results DB: %v", err)
		}
		defer db.Close()
		var rows []storage.Row
		for _, res := range results {
			for _, m := range res.Measures {
				rows = append(rows, storage.Row{
					Size:       res.Size,
					Strategy:   m.Strategy,
					AvgNs:      m.AvgNs,
					Collisions: m.Collisions,
				})
			}
		}
		if err := db.WriteRows(rows); err != nil {
			log.Fatalf("Failed to write results DB: %v", err)
		}
		fmt.Printf("Results stored in %s\n", cfg.Output.DB)
	}

	fmt.Printf("Totals: %s inserts, %s searches\n",
		humanize.Comma(int64(stats.Inserts())),
		humanize.Comma(int64(stats.Searches())))
}
