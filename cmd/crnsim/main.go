// crnsim runs an ensemble of a reaction network to a stable (or
// semi-stable-tolerant) solution and prints the terminal species averages.
// With -monitor-addr set, it also serves a websocket view of the run's
// progress while it executes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"crnensemble/config"
	"crnensemble/demo"
	"crnensemble/engine"
	"crnensemble/monitor"
	"crnensemble/network"
)

var (
	configPath  *string
	monitorAddr *string
	trials      *int
	tolerance   *int
	runtimeSecs *uint64
	verbose     *bool
)

func init() {
	configPath = flag.String("config", "", "path to a YAML config file (engine: section); overrides defaults, overridden by other flags")
	monitorAddr = flag.String("monitor-addr", "", "if set, serve a websocket progress monitor at this address (e.g. :8080)")
	trials = flag.Int("trials", 0, "number of trials to run (0: use config/default)")
	tolerance = flag.Int("tolerance", 0, "max semi-stable steps before accepting a trial as stable (0: use config/default)")
	runtimeSecs = flag.Uint64("runtime", 0, "max wall-clock runtime in seconds (0: use config/default, which is unbounded)")
	verbose = flag.Bool("verbose", false, "stream intermediary per-round averages")
	flag.Parse()
}

func loadConfig() *config.EngineConfig {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.FromYAML(*configPath)
		if err != nil {
			log.Fatalf("crnsim: loading config %s: %v", *configPath, err)
		}
		cfg = loaded
	}
	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *tolerance > 0 {
		cfg.MaxSemiStableSteps = *tolerance
	}
	if *runtimeSecs > 0 {
		cfg.RuntimeSeconds = *runtimeSecs
		cfg.HasRuntimeSeconds = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg
}

func run() error {
	cfg := loadConfig()

	reactions, initial := demo.Fibonacci()
	primeNetwork := network.New(reactions, initial)

	builder := engine.New(primeNetwork)
	builder = cfg.ApplyTo(builder)

	eng, responses := builder.Build()

	if *monitorAddr != "" && responses != nil {
		srv := monitor.NewServer(*monitorAddr, responses)
		go func() {
			if err := srv.Serve(); err != nil {
				log.Println("crnsim: monitor server:", err)
			}
		}()
	} else if responses != nil {
		// Drain so the engine's blocking send never stalls a run nobody
		// is watching.
		go func() {
			for range responses {
			}
		}()
	}

	result, err := eng.Run()
	if err != nil {
		return fmt.Errorf("crnsim: run: %w", err)
	}

	for _, avg := range result.Values {
		fmt.Printf("%s\t%.4f\n", avg.Name, avg.Mean)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
