// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command treemap-stress runs randomized nested-view checks against
// treemap.Map and reports the first disagreement with a reference set.
//
// Usage:
//
//	treemap-stress [-size n] [-seed s] [-depth d] [-rounds r] [-v] [-json]
//
// Round i uses seed s+i, so a failing round can be replayed alone with
// -rounds 1 and its seed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jba/treemap/internal/stress"
)

func main() {
	def := stress.DefaultConfig()
	size := flag.Int("size", def.Size, "keys lie in [0, size)")
	seed := flag.Uint64("seed", def.Seed, "seed of the first round")
	depth := flag.Int("depth", def.MaxDepth, "maximum view nesting (0 for no limit)")
	rounds := flag.Int("rounds", 1, "number of runs, with consecutive seeds")
	verbose := flag.Bool("v", false, "log every view")
	jsonLog := flag.Bool("json", false, "log JSON instead of console text")
	flag.Parse()

	log, err := newLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "treemap-stress: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for i := range *rounds {
		cfg := stress.Config{
			Size:     *size,
			Seed:     *seed + uint64(i),
			MaxDepth: *depth,
			Logger:   log.With(zap.Int("round", i)),
		}
		if _, err := stress.Run(ctx, cfg); err != nil {
			if ctx.Err() != nil {
				log.Warn("interrupted", zap.Int("round", i))
				break
			}
			failed++
		}
	}
	if failed > 0 {
		log.Error("rounds failed", zap.Int("failed", failed), zap.Int("rounds", *rounds))
		log.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose, jsonLog bool) (*zap.Logger, error) {
	var cfg zap.Config
	if jsonLog {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
