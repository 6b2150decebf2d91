package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
)

type rootFlags struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve or export the portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file loaded before the environment")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadConfig(flags *rootFlags) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.App.Version == "dev" {
		cfg.App.Version = version
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.App.LogLevel,
		HumanReadable: cfg.App.LogHuman,
		Writer:        os.Stdout,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
