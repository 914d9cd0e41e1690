package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/app"
	"github.com/fitfocus/fitfocus-cli/internal/config"
	"github.com/fitfocus/fitfocus-cli/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local fitfocus database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := resolveDBPath(cfg)
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fitfocus database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
