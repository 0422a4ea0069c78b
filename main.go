package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/santiagovm/musiccloud/app"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	if err := godotenv.Load("vars.env"); err != nil {
		logger.Debug("no vars.env file, using the process environment")
	}

	cmd := &cli.Command{
		Name:  "musiccloud",
		Usage: "A simple backend for managing users and their music library",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP API server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					application, err := app.NewApplication(logger)
					if err != nil {
						return err
					}

					e := application.Router()

					logger.Info("starting server", "addr", os.Getenv("ADDR"))

					return e.Start(os.Getenv("ADDR"))
				},
			},
			{
				Name:  "seed",
				Usage: "Load sample users, songs and library entries",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					application, err := app.NewApplication(logger)
					if err != nil {
						return err
					}

					return application.Seed()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal(err)
	}
}
