package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/emap-tools/aucap/app"
	"github.com/emap-tools/aucap/config"
	"github.com/emap-tools/aucap/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "aucap",
	Short: "Generate Australian zone capacity configuration from the OpenNEM facility registry",
	RunE:  runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "aucap.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// setup loads configuration and applies the log level. Every invocation gets
// a run id carried as a field on all loggers created afterwards.
func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetRunID(uuid.NewString())
	return cfg, logger.New("main"), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, _, err := setup()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}
