package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/server"
)

// @title UniDash API
// @version 1.0
// @description Simulated university dashboard backend over a generated dataset

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	app := &cli.App{
		Name:  "unidash-api",
		Usage: "serve the simulated university dashboard API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   filepath.Join("configs", "config.yaml"),
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"UNIDASH_CONFIG"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

func run(c *cli.Context) error {
	srv, err := server.NewServer(c.String("config"))
	if err != nil {
		return err
	}
	return srv.Run()
}
