package main

import (
	"os"

	"github.com/rs/zerolog"

	"modcheck/config"
	"modcheck/windows"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg, err := config.Load("")
	if err != nil {
		log.Warn().Err(err).Msg("could not load preferences, using defaults")
		cfg = config.Default()
	}

	windows.CreateMainWindow(cfg, log)
}
