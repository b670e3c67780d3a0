package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/roadwatch/roadwatch/pkg/ledger"
	"github.com/roadwatch/roadwatch/pkg/runner"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("ROADWATCH_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ROADWATCH_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "roadwatch",
		Description: "Polls the QLD Traffic events feed and notifies Home Assistant about relevant events",

		Commands: []*cli.Command{
			runner.RegisterCLI(),
			ledger.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
