package commands

import (
	"fmt"

	"gbsorgapi/bootstrap"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables in the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := connect(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := bootstrap.ApplySchema(db); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
			summary, err := bootstrap.LoadData(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready: %d departments, %d villages, %d groups, %d users\n",
				summary.Departments, summary.Villages, summary.Groups, summary.Users)
			return nil
		},
	}
}
