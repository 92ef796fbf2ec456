package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/cbodonnell/kangaroo/pkg/config"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/cbodonnell/kangaroo/pkg/sim"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	scriptPath := flag.String("script", "", "Path to a YAML input script")
	frames := flag.Uint64("frames", 0, "Override the number of frames in the script")
	logLevel := flag.String("log-level", "warn", "Log level")
	width := flag.Int("width", 1280, "Canvas width")
	height := flag.Int("height", 504, "Canvas height")
	seed := flag.Uint64("seed", 1, "World seed, 0 for a random world; defaults to the config seed when it has one")
	every := flag.Uint64("every", 1, "Trace one frame out of every n")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	// The trace owns stdout.
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	cfg.Seed = worldSeed(flag.CommandLine, cfg.Seed, *seed)

	script := &sim.Script{Frames: *frames}
	if *scriptPath != "" {
		script, err = sim.LoadScript(*scriptPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load script: %v", err))
		}
		if *frames != 0 {
			script.Frames = *frames
		}
	}
	if script.Frames == 0 {
		panic("Failed to run simulation: no frames to run, pass -script or -frames")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := sim.Run(ctx, sim.RunOptions{
		Session: cfg.SessionOptions(float64(*width), float64(*height)),
		Script:  script,
		Trace:   os.Stdout,
		Every:   *every,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to run simulation: %v", err))
	}

	summary, err := json.Marshal(result)
	if err != nil {
		panic(fmt.Sprintf("Failed to marshal result: %v", err))
	}
	fmt.Fprintln(os.Stderr, string(summary))
}

// worldSeed keeps a seed from the config file unless -seed was passed explicitly.
// Without either the simulation uses the flag default so runs are reproducible.
func worldSeed(fs *flag.FlagSet, configured, flagged uint64) uint64 {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	if set || configured == 0 {
		return flagged
	}
	return configured
}
