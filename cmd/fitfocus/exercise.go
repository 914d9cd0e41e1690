package fitfocus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitfocus/fitfocus-cli/internal/store"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage your workout list",
}

var (
	exerciseName  string
	exerciseSets  string
	exerciseReps  string
	exerciseNotes string
)

var exerciseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := store.ExerciseForm{
			Name:  exerciseName,
			Sets:  exerciseSets,
			Reps:  exerciseReps,
			Notes: exerciseNotes,
		}
		return withStore(func(s *store.Store) error {
			ex, err := s.CreateCustomExercise(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s x %s) with id %s\n", ex.Name, ex.Sets, ex.Reps, ex.ID)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			exercises := s.CustomExercises()
			if len(exercises) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No exercises yet. Run: fitfocus exercise create")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tSETS\tREPS\tNOTES")
			for _, ex := range exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", ex.ID, ex.Name, ex.Sets, ex.Reps, ex.Notes)
			}
			return nil
		})
	},
}

var exerciseRemoveCmd = &cobra.Command{
	Use:   "remove <exercise-id>",
	Short: "Remove an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.RemoveCustomExercise(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseCreateCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseRemoveCmd)

	exerciseCreateCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseCreateCmd.Flags().StringVar(&exerciseSets, "sets", "", "Number of sets (free text)")
	exerciseCreateCmd.Flags().StringVar(&exerciseReps, "reps", "", "Reps per set (free text)")
	exerciseCreateCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Optional notes")
}
