package fitfocus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

func parseWaterAmount(raw string) (int, error) {
	ml, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q (expected milliliters)", raw)
	}
	if ml <= 0 {
		return 0, fmt.Errorf("amount must be > 0")
	}
	return ml, nil
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add water in milliliters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseWaterAmount(args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			total, err := s.AdjustWater(ml)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", total, waterTarget(s.Profile()))
			return nil
		})
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove <ml>",
	Short: "Remove water in milliliters (never below zero)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseWaterAmount(args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			total, err := s.AdjustWater(-ml)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", total, waterTarget(s.Profile()))
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show water progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", s.Stats().WaterDrank, waterTarget(s.Profile()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterRemoveCmd)
	waterCmd.AddCommand(waterShowCmd)
}
