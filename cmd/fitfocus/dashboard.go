package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/calc"
	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's intake, hydration, and meal list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			profile := s.Profile()
			stats := s.Stats()

			consumed := calc.TotalConsumed(stats)
			target := calorieTarget(profile)
			remaining := target - consumed
			if remaining < 0 {
				remaining = 0
			}

			if profile != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Hello, %s\n", profile.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d / %d kcal (remaining %d)\n", consumed, target, remaining)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", stats.WaterDrank, waterTarget(profile))

			if len(stats.Foods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tKCAL")
			for _, f := range stats.Foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", f.ID, formatLogTime(f.Timestamp), f.Name, f.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
