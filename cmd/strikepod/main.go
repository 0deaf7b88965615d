package main

import (
	"flag"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/zerolog"

	"github.com/strikepod/strikepod"
	"github.com/strikepod/strikepod/config"
)

func main() {
	configDir := flag.String("config", ".", "directory containing strikepod.cfg.json")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	tuning, err := config.Load(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}
	if lvl, err := zerolog.ParseLevel(tuning.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warn().Err(err).Msg("sentry init failed")
		} else {
			defer sentry.Recover()
		}
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	agent := strikepod.NewAgent(os.Stdin, os.Stdout, tuning, log)
	if err := agent.Run(); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
}
