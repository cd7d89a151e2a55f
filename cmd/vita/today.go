package vita

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/tracker"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(t *tracker.Tracker, p model.UserProfile) error {
			log, err := t.EnsureCurrentLog()
			if err != nil {
				return err
			}
			target := health.TargetCalories(p)
			remaining := float64(target) - log.TotalCalories

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", log.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %.0f kcal of %d kcal target\n", log.TotalCalories, target)
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %.0f kcal\n", remaining)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %.1fg | C %.1fg | F %.1fg\n", log.TotalProtein, log.TotalCarbs, log.TotalFat)
			for _, item := range log.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%.0f kcal)\n", item.Meal, item.Name, item.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
