package vita

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/tracker"
)

var (
	goalType     string
	goalTarget   float64
	goalDeadline string
	goalCurrent  float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Track measurable progress goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a progress goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		gt, err := model.ParseGoalType(goalType)
		if err != nil {
			return err
		}
		return requireProfile(func(t *tracker.Tracker, _ model.UserProfile) error {
			goal, err := t.AddGoal(gt, goalTarget, goalDeadline)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s goal %s (target %.1f)\n", goal.Type, goal.ID, goal.Target)
			return nil
		})
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <goal-id>",
	Short: "Update a goal's current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(t *tracker.Tracker, _ model.UserProfile) error {
			goal, err := t.UpdateGoalProgress(args[0], goalCurrent)
			if err != nil {
				return err
			}
			status := "in progress"
			if goal.IsCompleted {
				status = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %s: %.1f of %.1f (%s)\n", goal.ID, goal.Current, goal.Target, status)
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List progress goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(t *tracker.Tracker, _ model.UserProfile) error {
			goals := t.Goals()
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet")
				return nil
			}
			for _, g := range goals {
				line := fmt.Sprintf("%s [%s] %.1f of %.1f", g.ID, g.Type, g.Current, g.Target)
				if g.Deadline != "" {
					line += " by " + g.Deadline
				}
				if g.IsCompleted {
					line += " (completed)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalProgressCmd, goalListCmd)

	goalAddCmd.Flags().StringVar(&goalType, "type", "", "Goal type: weight, calories, or exercise")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target value")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "Deadline YYYY-MM-DD (optional)")
	_ = goalAddCmd.MarkFlagRequired("type")
	_ = goalAddCmd.MarkFlagRequired("target")

	goalProgressCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Current value")
	_ = goalProgressCmd.MarkFlagRequired("current")
}
