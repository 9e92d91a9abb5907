// Command binsort-bench times the recursive and iterative binary radix
// sorts against the library sort across element widths, verifying that
// all three agree on every input.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/LorienLV/binary-radix-sort/bench"
)

var (
	configFile = flag.String("config", "", "path to a TOML benchmark description")
	reps       = flag.Int("reps", 1, "number of repetitions per element width")
	size       = flag.Int("size", 10, "number of elements to sort per repetition")
	seed       = flag.Int64("seed", 0, "input generator seed; 0 derives one from the clock")
	out        = flag.String("out", "", "write the msgpack-encoded report to this file")
)

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := bench.DefaultConfig()
	if *configFile != "" {
		cfg, err = bench.LoadConfig(*configFile)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "reps":
			cfg.Reps = *reps
		case "size":
			cfg.Size = *size
		case "seed":
			cfg.Seed = *seed
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger.Info("starting benchmark",
		zap.Int("reps", cfg.Reps),
		zap.Int("size", cfg.Size),
		zap.Int64("seed", cfg.Seed))

	report, err := bench.Run(cfg)
	if err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}

	for _, res := range report.Results {
		logger.Info("result",
			zap.String("type", res.TypeName),
			zap.Duration("baseline", res.Baseline),
			zap.Duration("recursive", res.Recursive),
			zap.Duration("iterative", res.Iterative))
	}

	if *out != "" {
		buf, err := report.MarshalBinary()
		if err != nil {
			logger.Fatal("encode report", zap.Error(err))
		}
		if err := os.WriteFile(*out, buf, 0o644); err != nil {
			logger.Fatal("write report", zap.Error(err))
		}
		logger.Info("report written", zap.String("path", *out))
	}
}
