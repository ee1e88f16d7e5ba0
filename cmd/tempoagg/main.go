// Command tempoagg aggregates stored TempoCNN predictions into local and
// global tempo estimates.
//
// Usage:
//
//	tempoagg [flags] predictions.yaml
//
// The input file holds one distribution of 256 class probabilities per
// segment, as a YAML (or JSON) sequence of sequences. Index i is i+30 BPM.
//
// Examples:
//
//	tempoagg predictions.yaml
//	tempoagg -method median predictions.json
//	tempoagg -config mir.yaml -workers 4 -metrics predictions.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-mir/internal/config"
	"github.com/cwbudde/algo-mir/internal/metrics"
	"github.com/cwbudde/algo-mir/rhythm/tempocnn"
)

type options struct {
	configPath  string
	method      tempocnn.Method
	methodSet   bool
	workers     int
	showMetrics bool
	input       string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flag.TextVar(&opts.method, "method", tempocnn.MethodMajority, "aggregation method: mean, median or majority")
	flag.IntVar(&opts.workers, "workers", 0, "decode segments on up to n goroutines (0 uses the config value)")
	flag.BoolVar(&opts.showMetrics, "metrics", false, "print aggregation counters after the result")
	flag.Usage = func() { usage(flag.CommandLine) }
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "method" {
			opts.methodSet = true
		}
	})

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.input = flag.Arg(0)

	if err := run(opts, config.Loader{}, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: tempoagg [flags] predictions.yaml\n\n")
	fmt.Fprintf(w, "Aggregates per-segment tempo class probabilities into a global tempo.\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %s\n", strings.Join(config.EnvVars(), ", "))
}

func run(opts options, loader config.Loader, stdout, stderr io.Writer) error {
	cfg, err := loader.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.methodSet {
		cfg.Tempo.AggregationMethod = opts.method.String()
	}
	if opts.workers > 0 {
		cfg.DecodeWorkers = opts.workers
	}

	logger := newLogger(stderr, cfg.LogLevel)

	readFile := loader.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	predictions, err := readPredictions(readFile, opts.input)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	est, err := tempocnn.New(
		tempocnn.StaticPredictor(predictions),
		cfg.Tempo,
		tempocnn.WithLogger(logger),
		tempocnn.WithObserver(metrics.NewPrometheus(reg)),
		tempocnn.WithDecodeWorkers(cfg.DecodeWorkers),
	)
	if err != nil {
		return err
	}

	logger.Debug("aggregating", "segments", len(predictions), "method", est.Method())
	res, err := est.Compute(nil)
	if err != nil {
		return err
	}

	if err := printResult(stdout, res); err != nil {
		return err
	}
	if opts.showMetrics {
		return printMetrics(stdout, reg)
	}
	return nil
}

func readPredictions(readFile func(string) ([]byte, error), path string) ([][]float64, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	var predictions [][]float64
	if err := yaml.Unmarshal(raw, &predictions); err != nil {
		return nil, fmt.Errorf("decode predictions %s: %w", path, err)
	}
	if len(predictions) == 0 {
		return nil, errors.New("predictions file holds no segments")
	}
	return predictions, nil
}

func printResult(w io.Writer, res tempocnn.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Segment\tBPM\tConfidence\n")
	fmt.Fprintf(tw, "-------\t---\t----------\n")
	for i := range res.Local {
		fmt.Fprintf(tw, "%d\t%.0f\t%.4f\n", i, res.Local[i], res.Confidence[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write segments: %w", err)
	}

	line := fmt.Sprintf("\nglobal tempo: %.2f BPM (%s", res.Global, res.Method)
	if res.Method == tempocnn.MethodMajority {
		line += fmt.Sprintf(", %d votes", res.Votes)
	}
	line += ")"
	if res.Tie != nil {
		line += fmt.Sprintf(" tied with %d BPM", res.Tie.RunnerUp)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nMetric\tValue\n")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(tw, "%s\t%g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(tw, "%s\tcount=%d sum=%g\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return tw.Flush()
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(value string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
