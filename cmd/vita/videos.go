package vita

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/tracker"
	"github.com/vitacli/vita/internal/videos"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Workout videos matched to your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(_ *tracker.Tracker, p model.UserProfile) error {
			for _, v := range videos.Fetch(videos.KeywordsFor(p)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  https://www.youtube.com/watch?v=%s\n", v.Title, v.ID)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(videosCmd)
}
