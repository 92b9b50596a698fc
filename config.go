package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
	"github.com/xgzlucario/storagebench/internal/bench"
	"github.com/xgzlucario/storagebench/internal/churn"
)

const envPrefix = "STORAGEBENCH"

type Config struct {
	Bench    bench.Options
	Output   string
	Seed     uint64
	LogLevel string
}

func initConfig(fileName string) error {
	viper.SetDefault("bench.capacity", bench.DefaultOptions.Capacity)
	viper.SetDefault("bench.output", "out.csv")
	viper.SetDefault("bench.seed", 0)
	viper.SetDefault("bench.from", bench.DefaultOptions.From)
	viper.SetDefault("bench.to", bench.DefaultOptions.To)
	viper.SetDefault("bench.strict", false)
	viper.SetDefault("churn.passes", churn.DefaultOptions.Passes)
	viper.SetDefault("churn.window_divisor", churn.DefaultOptions.WindowDivisor)
	viper.SetDefault("churn.lower_bound_percent", churn.DefaultOptions.LowerBoundPercent)
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if fileName == "" {
		return nil
	}
	viper.SetConfigFile(fileName)
	return viper.ReadInConfig()
}

func configGetString(key string) string { return viper.GetString(key) }

func configGetInt(key string) int { return viper.GetInt(key) }

func configGetBool(key string) bool { return viper.GetBool(key) }

func loadConfig() (*Config, error) {
	config := &Config{
		Bench: bench.Options{
			Capacity: configGetInt("bench.capacity"),
			From:     configGetInt("bench.from"),
			To:       configGetInt("bench.to"),
			Strict:   configGetBool("bench.strict"),
			Churn: churn.Options{
				Passes:            configGetInt("churn.passes"),
				WindowDivisor:     configGetInt("churn.window_divisor"),
				LowerBoundPercent: configGetInt("churn.lower_bound_percent"),
			},
		},
		Output:   configGetString("bench.output"),
		Seed:     viper.GetUint64("bench.seed"),
		LogLevel: configGetString("log.level"),
	}
	return config, config.validate()
}

func (c *Config) validate() error {
	b := c.Bench
	switch {
	case b.Capacity < 1 || uint64(b.Capacity) > math.MaxUint32:
		return fmt.Errorf("bench.capacity must be in [1,%d], got %d", uint64(math.MaxUint32), b.Capacity)
	case b.From < 0 || b.To > 100 || b.From > b.To:
		return fmt.Errorf("bench.from/bench.to must satisfy 0 <= from <= to <= 100, got %d..%d", b.From, b.To)
	case b.Churn.Passes < 0:
		return fmt.Errorf("churn.passes must not be negative, got %d", b.Churn.Passes)
	case b.Churn.WindowDivisor < 1:
		return fmt.Errorf("churn.window_divisor must be positive, got %d", b.Churn.WindowDivisor)
	case b.Churn.LowerBoundPercent < 0 || b.Churn.LowerBoundPercent >= 100:
		return fmt.Errorf("churn.lower_bound_percent must be in [0,100), got %d", b.Churn.LowerBoundPercent)
	case c.Output == "":
		return fmt.Errorf("bench.output must not be empty")
	}
	return nil
}
