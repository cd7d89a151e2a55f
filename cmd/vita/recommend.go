package vita

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/tracker"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Diet and workout recommendations for your profile",
}

var recommendDietCmd = &cobra.Command{
	Use:   "diet",
	Short: "Show a diet plan adjusted for your goal and conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(_ *tracker.Tracker, p model.UserProfile) error {
			rec := health.RecommendDiet(p)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n\n", rec.Title, rec.Description)
			for _, f := range rec.Foods {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", f)
			}
			return nil
		})
	},
}

var recommendWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Show a workout plan adjusted for your goal, conditions, and BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(_ *tracker.Tracker, p model.UserProfile) error {
			rec := health.RecommendWorkout(p)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n\n", rec.Title, rec.Description)
			for _, e := range rec.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", e)
			}
			return nil
		})
	},
}

var recommendMessageCmd = &cobra.Command{
	Use:   "message",
	Short: "Show a motivational message",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(_ *tracker.Tracker, p model.UserProfile) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			fmt.Fprintln(cmd.OutOrStdout(), health.MotivationalMessage(p, rng))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.AddCommand(recommendDietCmd, recommendWorkoutCmd, recommendMessageCmd)
}
