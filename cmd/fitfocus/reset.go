package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete your profile and all tracked data",
	Long:  "Deletes the profile, daily stats, custom foods, custom exercises, and favorites. The theme preference is kept. Irreversible.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}
		return withStore(func(s *store.Store) error {
			if err := s.ResetAll(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the irreversible reset")
}
