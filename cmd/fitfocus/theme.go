package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the current theme preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			theme, err := s.Theme()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			theme, err := s.ToggleTheme()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeToggleCmd)
}
