package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search, log, and manage foods",
}

var foodSearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the food list (empty term lists favorites)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 1 {
			term = args[0]
		}
		return withStore(func(s *store.Store) error {
			results := s.SearchFoods(term)
			if len(results) == 0 {
				if term == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet. Search by name and favorite what you eat often.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No foods found.")
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tUNIT\tFAV")
			for _, f := range results {
				fav := ""
				if s.IsFavorite(f.ID) {
					fav = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\t%s\n", f.ID, f.Name, f.Calories, f.Unit, fav)
			}
			return nil
		})
	},
}

var foodLogCmd = &cobra.Command{
	Use:   "log <food-id>",
	Short: "Log a food from the catalog or your custom foods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			item, ok := s.FoodByID(args[0])
			if !ok {
				return fmt.Errorf("food %q not found", args[0])
			}
			entry, err := s.LogFood(item)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) at %s\n", entry.Name, entry.Calories, formatLogTime(entry.Timestamp))
			return nil
		})
	},
}

var foodRemoveCmd = &cobra.Command{
	Use:   "remove <log-id>",
	Short: "Remove a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.RemoveFoodLog(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		})
	},
}

var (
	foodName     string
	foodCalories string
	foodUnit     string
)

var foodCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom food",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := store.FoodForm{
			Name:     foodName,
			Calories: foodCalories,
			Unit:     foodUnit,
		}
		return withStore(func(s *store.Store) error {
			item, err := s.CreateCustomFood(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%d kcal per %s) with id %s\n", item.Name, item.Calories, item.Unit, item.ID)
			return nil
		})
	},
}

var foodFavoriteCmd = &cobra.Command{
	Use:   "favorite <food-id>",
	Short: "Toggle a food in your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.ToggleFavorite(args[0]); err != nil {
				return err
			}
			if s.IsFavorite(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd)
	foodCmd.AddCommand(foodLogCmd)
	foodCmd.AddCommand(foodRemoveCmd)
	foodCmd.AddCommand(foodCreateCmd)
	foodCmd.AddCommand(foodFavoriteCmd)

	foodCreateCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodCreateCmd.Flags().StringVar(&foodCalories, "calories", "", "Calories per unit")
	foodCreateCmd.Flags().StringVar(&foodUnit, "unit", "", "Serving description (e.g. 100g)")
}
