package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/theapemachine/qtable"
)

func main() {
	configFile := flag.String("config", "", "configuration file")
	mode := flag.String("mode", "", "synthesis mode: line-aware or cost-aware")
	workers := flag.Int("workers", 0, "number of concurrent simulations")
	timeout := flag.Duration("timeout", 0, "per state simulation timeout")
	style := flag.String("style", "", "table style: ascii, unicode, light, bold")
	stats := flag.Bool("stats", false, "print circuit statistics")
	noTable := flag.Bool("notable", false, "do not print the truth table")
	dump := flag.Bool("dump", false, "dump the truth table structure")
	metrics := flag.Bool("metrics", false, "print build metrics in Prometheus text format")
	flag.Parse()

	cfg, err := qtable.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *mode != "" {
		cfg.Mode, err = qtable.ParseMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *timeout > 0 {
		cfg.StateTimeout = *timeout
	}
	if *style != "" {
		cfg.Style = *style
	}
	tabStyle, err := qtable.ParseStyle(cfg.Style)
	if err != nil {
		log.Fatal(err)
	}

	if len(flag.Args()) == 0 {
		fmt.Fprintf(os.Stderr, "usage: qtable [options] circuit.yaml...\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := prometheus.NewRegistry()
	m := qtable.NewMetrics(registry)

	var opts []qtable.BuilderOption
	opts = append(opts, qtable.WithConfig(cfg), qtable.WithMetrics(m))
	if cfg.CacheSize > 0 {
		cache, err := qtable.NewTableCache(cfg.CacheSize)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, qtable.WithCache(cache))
	}
	builder := qtable.NewBuilder(qtable.NewBasisSimulator(), opts...)
	synth := qtable.NewDocumentSynthesizer()

	for _, file := range flag.Args() {
		source, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		circuit, err := synth.Synthesize(ctx, source, cfg.Mode)
		if err != nil {
			log.Fatalf("%s: %v", file, err)
		}

		if *stats {
			qtable.RenderStats(os.Stdout, qtable.Stat(circuit), tabStyle)
		}
		if *noTable && !*dump {
			continue
		}

		table, err := builder.Build(ctx, circuit)
		if err != nil {
			log.Fatalf("%s: %v", file, err)
		}
		if !*noTable {
			qtable.RenderTable(os.Stdout, circuit, table, tabStyle)
		}
		if *dump {
			spew.Dump(table)
		}
	}

	if *metrics {
		if err := writeMetrics(os.Stdout, registry, m); err != nil {
			log.Fatal(err)
		}
	}
}

// writeMetrics prints the gathered collectors followed by the latency
// summary, which only the in-process snapshot holds.
func writeMetrics(w io.Writer, registry *prometheus.Registry, m *qtable.Metrics) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}

	snapshot := m.ExportMetrics()
	var keys []string
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "# %-20s %v\n", k, snapshot[k])
	}
	return nil
}
