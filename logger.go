package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.
	New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().
	Timestamp().
	Logger()

func setLogLevel(level string) error {
	lv, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	logger = logger.Level(lv)
	return nil
}
