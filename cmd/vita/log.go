package vita

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/tracker"
)

var (
	logFoodName string
	logCalories float64
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logMeal     string
	logListLast int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and review daily food logs",
}

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food item to today's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(logFoodName) == "" {
			return fmt.Errorf("--name is required")
		}
		meal, err := model.ParseMeal(logMeal)
		if err != nil {
			return err
		}
		item := model.FoodItem{
			Name:     logFoodName,
			Calories: logCalories,
			Protein:  logProtein,
			Carbs:    logCarbs,
			Fat:      logFat,
			Meal:     meal,
		}
		if !item.Valid() {
			return fmt.Errorf("macro values must be >= 0")
		}

		return requireProfile(func(t *tracker.Tracker, _ model.UserProfile) error {
			if err := t.AddFoodItem(item); err != nil {
				return err
			}
			current := t.CurrentLog()
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", item.Name, item.Meal)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				current.TotalCalories, current.TotalProtein, current.TotalCarbs, current.TotalFat)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily logs, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(t *tracker.Tracker, _ model.UserProfile) error {
			logs := t.Logs()
			if logListLast > 0 {
				logs = t.RecentLogs(logListLast)
			}
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No logs yet")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items, %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
					l.Date, len(l.Items), l.TotalCalories, l.TotalProtein, l.TotalCarbs, l.TotalFat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logListCmd)

	logAddCmd.Flags().StringVar(&logFoodName, "name", "", "Food name")
	logAddCmd.Flags().Float64Var(&logCalories, "calories", 0, "Calories (kcal)")
	logAddCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein (g)")
	logAddCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carbs (g)")
	logAddCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat (g)")
	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "Meal: breakfast, lunch, dinner, or snack")
	_ = logAddCmd.MarkFlagRequired("name")
	_ = logAddCmd.MarkFlagRequired("meal")

	logListCmd.Flags().IntVar(&logListLast, "last", 0, "Show only the last N days")
}
