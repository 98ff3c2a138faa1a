package main

import (
	"flag"
	"fmt"
	"os"

	"alohatrace/internal/config"
	"alohatrace/internal/metrics"
	"alohatrace/internal/progress"
	"alohatrace/internal/radio"
	"alohatrace/internal/trace"
)

const (
	ExitSuccess         = 0
	ExitThresholdFailed = 1
	ExitError           = 2
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	output := flag.String("output", "text", "output format: text, json, csv")
	quiet := flag.Bool("quiet", false, "suppress progress output during parsing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: alohatrace [flags] <trace-file>")
		flag.Usage()
		os.Exit(ExitError)
	}
	tracePath := flag.Arg(0)

	if *output != "text" && *output != "json" && *output != "csv" {
		fmt.Fprintf(os.Stderr, "error: --output must be 'text', 'json' or 'csv', got %q\n", *output)
		os.Exit(ExitError)
	}

	params := radio.DefaultParams()
	var thresholds *metrics.Thresholds
	if *configPath != "" {
		cfg, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitError)
		}
		params = cfg.Radio
		thresholds = cfg.Thresholds
	}

	events, err := trace.SplitFile(tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	prog := progress.NewReporter(*quiet)
	tracker := radio.NewTracker(params)
	parser := &trace.Parser{Tracker: tracker, Progress: prog.Update}

	table, err := parser.Parse(events)
	prog.Done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: parsing %s: %v\n", tracePath, err)
		os.Exit(ExitError)
	}

	engine := metrics.NewEngine(table, tracker)
	report, err := engine.Compute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	var thresholdResults *metrics.ThresholdResults
	if thresholds != nil {
		thresholdResults = thresholds.Check(report)
	}

	switch *output {
	case "json":
		metrics.FormatJSON(os.Stdout, report, thresholdResults)
	case "csv":
		if err := metrics.FormatCSV(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitError)
		}
	default:
		metrics.FormatText(os.Stdout, report, thresholdResults)
	}

	if thresholdResults != nil && !thresholdResults.Passed {
		if *output == "text" {
			fmt.Fprintln(os.Stderr, "\nThreshold check failed!")
		}
		os.Exit(ExitThresholdFailed)
	}
	os.Exit(ExitSuccess)
}
