package main

import (
	"errors"
	"flag"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/xgzlucario/storagebench/internal/bench"
	"github.com/xgzlucario/storagebench/internal/report"
	"github.com/xgzlucario/storagebench/internal/storage"
)

func main() {
	configFile := ""
	flag.StringVar(&configFile, "config", "", "path of config file.")
	flag.Parse()

	if err := initConfig(configFile); err != nil {
		logger.Fatal().Msgf("read config error: %v", err)
	}
	config, err := loadConfig()
	if err != nil {
		logger.Fatal().Msgf("invalid config: %v", err)
	}
	if err := setLogLevel(config.LogLevel); err != nil {
		logger.Fatal().Msgf("invalid log level: %v", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	out, err := report.Create(config.Output)
	if err != nil {
		logger.Fatal().Msgf("create result file error: %v", err)
	}
	defer out.Close()

	logger.Info().
		Str("capacity", humanize.Comma(int64(config.Bench.Capacity))).
		Uint64("seed", seed).
		Str("output", config.Output).
		Msgf("sweep %d%%..%d%%", config.Bench.From, config.Bench.To)

	summary := report.NewSummary(config.Bench.To - config.Bench.From + 1)
	harness := bench.New(config.Bench, rng)

	err = harness.Sweep(func(res bench.Result) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		logger.Info().
			Dur("gen", res.Phases.Fill).
			Dur("shuffle", res.Phases.Churn).
			Dur("total", res.Phases.Total).
			Str("entities", humanize.Comma(int64(res.Live))).
			Str("heap", humanize.IBytes(mem.HeapInuse)).
			Msgf("iter %d", res.Percent)

		summary.Add(res)
		return out.Write(res)
	})
	if err != nil {
		var mismatch *bench.MismatchError
		if errors.As(err, &mismatch) {
			logger.Fatal().
				Int("percent", mismatch.Percent).
				Msgf("backend desynchronized: %v", mismatch)
		}
		logger.Fatal().Msgf("sweep error: %v", err)
	}

	for _, line := range summary.Lines() {
		logger.Info().
			Dur("p90", line.P90).
			Dur("p99", line.P99).
			Dur("max", line.Max).
			Msgf("%v iter time", line.Kind)
	}
	hit, miss := storage.PoolStats()
	logger.Debug().Msgf("hashmap group pool hit: %d, miss: %d", hit, miss)
}
