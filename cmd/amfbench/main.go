// Command amfbench runs the internal/bench harness against frank, verify,
// and judge, mirroring the teacher's cmd/bench/main.go.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/amf-labs/amf-franking/internal/bench"
)

func main() {
	name := flag.String("name", "default", "Name of the benchmark run")
	iterations := flag.Int("iterations", 100, "Number of iterations for each operation")
	batchSize := flag.Int("batch-size", 32, "Number of signatures in the batch-verify pass")
	concurrent := flag.Bool("concurrent", true, "Also run the concurrent BatchVerify pass")
	output := flag.String("output", "", "Output file path (empty for stdout; required for chart format)")
	format := flag.String("format", "text", "Output format: text or chart (PNG bar chart)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := bench.Config{
		Name:       *name,
		Iterations: *iterations,
		Concurrent: *concurrent,
		BatchSize:  *batchSize,
	}

	runner, err := bench.NewRunner(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid benchmark configuration")
	}

	log.Info().Str("name", cfg.Name).Int("iterations", cfg.Iterations).Msg("running amf benchmarks")
	results, err := runner.RunAll()
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark run failed")
	}

	if *format == "chart" && *output == "" {
		log.Fatal().Msg("chart format requires -output to be set")
	}

	var w *os.File = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("path", *output).Msg("failed to open output file")
		}
		defer f.Close()
		w = f
	}

	var reportErr error
	switch *format {
	case "chart":
		reportErr = bench.WriteChart(w, results)
	default:
		reportErr = bench.WriteText(w, results)
	}
	if reportErr != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", reportErr)
		os.Exit(1)
	}

	log.Info().Msg("benchmarks completed successfully")
}
