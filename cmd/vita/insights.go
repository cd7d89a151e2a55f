package vita

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/tracker"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Health insights from your last 7 days of logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(t *tracker.Tracker, p model.UserProfile) error {
			recent := t.RecentLogs(7)
			current := t.CurrentLog()
			target := health.TargetCalories(p)

			insights := health.GenerateInsights(p, recent, current, target)
			if len(insights) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No insights yet, log a few days of food first")
				return nil
			}
			for _, ins := range insights {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s (%s)\n", ins.Type, ins.Title, ins.Category)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ins.Description)
				if ins.Recommendation != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  Tip: %s\n", ins.Recommendation)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
