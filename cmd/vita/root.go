package vita

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/app"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "vita",
	Short: "vita is a personal health and fitness planner for your terminal",
	Long:  "vita tracks your profile, daily food intake, and progress goals locally, and derives calorie targets, diet and workout recommendations, and health insights.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; env vars may be set directly.
		if path, err := app.EnvFilePath(); err == nil {
			_ = godotenv.Load(path)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
