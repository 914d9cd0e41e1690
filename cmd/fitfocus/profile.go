package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/calc"
	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your user profile",
}

// Onboarding flags stay strings on purpose: the store owns the
// parse-and-validate boundary, the CLI only collects raw fields.
var (
	profileName     string
	profileWeight   string
	profileHeight   string
	profileAge      string
	profileGender   string
	profileGoal     string
	profileActivity string
	profileTargetKg string
	profileWeeks    string
)

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create (or replace) your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := store.ProfileForm{
			Name:           profileName,
			Weight:         profileWeight,
			Height:         profileHeight,
			Age:            profileAge,
			Gender:         profileGender,
			Goal:           profileGoal,
			ActivityLevel:  profileActivity,
			TargetChangeKg: profileTargetKg,
			DurationWeeks:  profileWeeks,
		}
		return withStore(func(s *store.Store) error {
			profile, err := s.CreateProfile(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile created for %s\n", profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie target: %d kcal\n", calc.CalorieTarget(profile))
			fmt.Fprintf(cmd.OutOrStdout(), "Daily water target: %d ml\n", calc.WaterTarget(profile))
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile and derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			profile := s.Profile()
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run: fitfocus profile create")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg | Height: %.0f cm | Age: %d\n", profile.WeightKg, profile.HeightCm, profile.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s | Goal: %s | Activity: %s\n", profile.Gender, profile.Goal, profile.ActivityLevel)
			if profile.Goal != "maintain" && profile.TargetChangeKg > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Plan: %.1f kg over %.0f weeks\n", profile.TargetChangeKg, profile.DurationWeeks)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calorie target: %d kcal/day\n", calc.CalorieTarget(*profile))
			fmt.Fprintf(cmd.OutOrStdout(), "Water target: %d ml/day\n", calc.WaterTarget(*profile))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileCreateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileCreateCmd.Flags().StringVar(&profileWeight, "weight", "", "Weight in kg")
	profileCreateCmd.Flags().StringVar(&profileHeight, "height", "", "Height in cm")
	profileCreateCmd.Flags().StringVar(&profileAge, "age", "", "Age in years")
	profileCreateCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileCreateCmd.Flags().StringVar(&profileGoal, "goal", "", "lose, maintain, or gain")
	profileCreateCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate, active, or very_active")
	profileCreateCmd.Flags().StringVar(&profileTargetKg, "target-kg", "", "Intended weight change in kg")
	profileCreateCmd.Flags().StringVar(&profileWeeks, "weeks", "", "Timeframe in weeks (default 4)")
}
