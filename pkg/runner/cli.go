package runner

import (
	"github.com/urfave/cli/v2"

	"github.com/roadwatch/roadwatch/pkg/config"
	"github.com/roadwatch/roadwatch/pkg/homeassistant"
	"github.com/roadwatch/roadwatch/pkg/ledger"
	"github.com/roadwatch/roadwatch/pkg/traffic"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Poll the traffic feed once and notify about newly relevant events",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			notifiedEvents, err := ledger.Load(cfg.NotifiedEventsPath)
			if err != nil {
				return err
			}

			runner := &Runner{
				Criteria:    cfg.Criteria,
				Source:      traffic.NewClient(cfg.TrafficBaseURL, cfg.TrafficAPIKey),
				Sink:        homeassistant.NewClient(cfg.HomeAssistantBaseURL, cfg.HomeAssistantAccessToken),
				Ledger:      notifiedEvents,
				NotifyDelay: cfg.NotifyDelay,
			}

			return runner.Run(c.Context)
		},
	}
}
