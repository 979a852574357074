package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"effix/infrastructure/config"
	"effix/infrastructure/i18n"
	"effix/infrastructure/logging"
)

const defaultConfigPath = "config/effix.yaml"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "effix",
		Short: "effix CRM dashboard",
		Long: `effix serves the CRM dashboard (leads, customers, expenses, invoices,
projects and tasks) and exports its tables from the command line.

Running effix without a subcommand starts the web server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the YAML config file")

	root.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newShowCmd(opts),
		newSeedCmd(opts),
	)
	return root
}

// app is what every subcommand needs after reading the config.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *i18n.Catalog
}

func bootstrap(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}
	catalog, err := i18n.LoadCatalog(i18n.Options{
		NumberFormat:   cfg.Locale.NumberFormat,
		CurrencyCode:   cfg.Currency.Code,
		CurrencySymbol: cfg.Currency.Symbol,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load translations: %w", err)
	}
	return &app{cfg: cfg, logger: logger, catalog: catalog}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
