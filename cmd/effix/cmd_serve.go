package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"effix/infrastructure/audit"
	"effix/infrastructure/fixtures"
	httpserver "effix/infrastructure/http"
	"effix/infrastructure/i18n"
	"effix/infrastructure/navigation"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	a, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()
	undo := zap.ReplaceGlobals(a.logger)
	defer undo()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, counts, err := fixtures.Open(ctx, a.cfg.SQLite.Path)
	if err != nil {
		a.logger.Error("open fixture store failed", zap.String("path", a.cfg.SQLite.Path), zap.Error(err))
		return err
	}
	defer db.Close()
	a.logger.Info("fixtures seeded",
		zap.String("path", a.cfg.SQLite.Path),
		zap.Int("leads", counts.Leads),
		zap.Int("customers", counts.Customers),
		zap.Int("expenses", counts.Expenses),
		zap.Int("invoices", counts.Invoices),
		zap.Int("projects", counts.Projects),
		zap.Int("tasks", counts.Tasks),
	)

	def, _ := i18n.ParseLocale(a.cfg.Locale.Default)
	server := httpserver.NewServer(a.cfg.Server.Addr, httpserver.Deps{
		DB:            db,
		Catalog:       a.catalog,
		DefaultLocale: def,
		Nav:           navigation.New(),
		Audit:         audit.NewService(a.logger),
		Logger:        a.logger,
	})
	server.ShutdownTimeout = a.cfg.Server.ShutdownTimeout

	if err := server.Run(ctx); err != nil {
		a.logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	a.logger.Info("server stopped")
	return nil
}
