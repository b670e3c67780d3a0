package ledger

import (
	"os"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "ledger",
		Usage: "Inspect the notified-events ledger",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print every recorded notification",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "ledger file path",
						Value: defaultPath(),
					},
				},
				Action: func(c *cli.Context) error {
					ledger, err := Load(c.String("path"))
					if err != nil {
						return err
					}

					for _, record := range ledger.Records() {
						pretty.Println(record)
					}

					return nil
				},
			},
		},
	}
}

func defaultPath() string {
	if path := os.Getenv("ROADWATCH_NOTIFIED_EVENTS_PATH"); path != "" {
		return path
	}

	return "notified.json"
}
