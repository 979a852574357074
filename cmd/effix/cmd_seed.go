package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"effix/infrastructure/fixtures"
	"effix/infrastructure/sqlite"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <sqlite-file>",
		Short: "Write the sample records into a SQLite file",
		Long: `Creates the schema in the given SQLite file and replaces every record
table with the sample data. Running it again leaves the same rows behind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sqlite.IsMemory(args[0]) {
				return fmt.Errorf("seed needs a file path, not %s", sqlite.MemoryPath)
			}
			db, counts, err := fixtures.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer db.Close()
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"seeded %s: %d leads, %d customers, %d expenses, %d invoices, %d projects, %d tasks\n",
				args[0], counts.Leads, counts.Customers, counts.Expenses, counts.Invoices, counts.Projects, counts.Tasks)
			return err
		},
	}
}
