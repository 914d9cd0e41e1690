package fitfocus

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fitfocus",
	Short: "fitfocus tracks calories, water, and workouts from your terminal",
	Long:  "fitfocus is a local-first nutrition tracker: onboard a profile once, get a daily calorie and hydration target, and log meals, water, and custom exercises against it.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
