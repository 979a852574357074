package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"effix/frontend/exports"
	"effix/frontend/pages"
	"effix/frontend/shared/table"
	"effix/infrastructure/fixtures"
	"effix/infrastructure/i18n"
	"effix/infrastructure/metrics"
	"effix/infrastructure/sqlite"
)

type tableOptions struct {
	query  string
	status string
	lang   string
}

func (o *tableOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.query, "query", "", "free-text search")
	cmd.Flags().StringVar(&o.status, "status", table.AllStatuses, "status to keep, or All")
	cmd.Flags().StringVar(&o.lang, "lang", "", "label language (en or ar); defaults to locale.default")
}

func (o *tableOptions) tableQuery() table.Query {
	return table.Query{Text: o.query, Status: o.status}
}

// withPage resolves the page and a seeded store, then runs fn.
func withPage(ctx context.Context, opts *rootOptions, topts *tableOptions, name string,
	fn func(a *app, db *sqlite.DB, e exports.Exporter, tr *i18n.Translator) error,
) error {
	e, err := pages.Lookup(name)
	if err != nil {
		return err
	}
	a, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	lang := topts.lang
	if lang == "" {
		lang = a.cfg.Locale.Default
	}
	loc, ok := i18n.ParseLocale(lang)
	if !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}

	db, _, err := fixtures.Open(ctx, a.cfg.SQLite.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(a, db, e, a.catalog.Translator(loc))
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	topts := &tableOptions{}
	cmd := &cobra.Command{
		Use:   "export <page>",
		Short: "Write a page's filtered table as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPage(cmd.Context(), opts, topts, args[0], func(a *app, db *sqlite.DB, e exports.Exporter, tr *i18n.Translator) error {
				if err := e.WriteCSV(cmd.Context(), db, tr, topts.tableQuery(), cmd.OutOrStdout()); err != nil {
					a.logger.Error("csv export failed", zap.String("page", e.PageName()), zap.Error(err))
					return err
				}
				metrics.RecordExport(e.PageName(), "csv")
				return nil
			})
		},
	}
	topts.bind(cmd)
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	topts := &tableOptions{}
	cmd := &cobra.Command{
		Use:   "show <page>",
		Short: "Print a page's filtered table in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPage(cmd.Context(), opts, topts, args[0], func(a *app, db *sqlite.DB, e exports.Exporter, tr *i18n.Translator) error {
				out, err := e.Terminal(cmd.Context(), db, tr, topts.tableQuery())
				if err != nil {
					return err
				}
				metrics.RecordExport(e.PageName(), "terminal")
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			})
		},
	}
	topts.bind(cmd)
	return cmd
}
