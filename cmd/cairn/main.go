package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"github.com/xy-planning-network/cairn/config"
	"github.com/xy-planning-network/cairn/logger"
	"github.com/xy-planning-network/cairn/ranger"
)

const (
	fConfig  = "config"
	fContent = "content"
	fEnv     = "env"
	fPort    = "port"
)

func main() {
	cmd := &cli.Command{
		Name:   "cairn",
		Usage:  "route requests to content and services by prefix rules",
		Flags:  flags(),
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "validate the routing configuration and exit",
				Action: check,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.New().Fatal(err.Error(), nil)
		os.Exit(1)
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      fConfig,
			Usage:     "The YAML file holding the routing rules",
			Value:     ranger.DefaultConfigFile,
			TakesFile: true,
			Sources:   cli.EnvVars(ranger.ConfigFileEnvVar),
		},
		&cli.StringFlag{
			Name:    fContent,
			Usage:   "The directory content is resolved in",
			Value:   ranger.DefaultContentDir,
			Sources: cli.EnvVars(ranger.ContentDirEnvVar),
		},
		&cli.StringFlag{
			Name:    fPort,
			Usage:   "The port on which to run the server",
			Value:   ranger.DefaultPort,
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    fEnv,
			Usage:   "The environment the server runs in: DEVELOPMENT, TESTING, STAGING or PRODUCTION",
			Sources: cli.EnvVars("ENVIRONMENT"),
		},
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	rng, err := ranger.New(
		ranger.WithContext(ctx),
		ranger.WithEnv(cmd.String(fEnv)),
		ranger.WithConfigFile(cmd.String(fConfig)),
		ranger.WithContentDir(cmd.String(fContent)),
		ranger.WithPort(cmd.String(fPort)),
	)
	if err != nil {
		return err
	}

	return rng.Guide()
}

func check(_ context.Context, cmd *cli.Command) error {
	fp := cmd.String(fConfig)
	cfg, err := config.Load(fp)
	if err != nil {
		return err
	}

	table, err := cfg.Router.Table()
	if err != nil {
		return err
	}

	fmt.Fprintf(color.Output, "%s %s: %d rules, home %s, lang %s\n",
		color.GreenString("ok"), fp, table.Len(), cfg.Router.Home, cfg.Locale.Lang)
	return nil
}
