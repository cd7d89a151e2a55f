package vita

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
	"github.com/vitacli/vita/internal/tracker"
)

var (
	exportOut string
	importIn  string
)

type exportData struct {
	Profile *model.UserProfile   `json:"userProfile,omitempty"`
	Logs    []model.DailyLog     `json:"dailyLogs,omitempty"`
	Goals   []model.ProgressGoal `json:"progressGoals,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, logs, and goals to a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withTracker(func(t *tracker.Tracker, _ *store.Store) error {
			data := exportData{
				Profile: t.Profile(),
				Logs:    t.Logs(),
				Goals:   t.Goals(),
			}
			b, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON snapshot, replacing local profile and logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var data exportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parse import json: %w", err)
		}

		return withTracker(func(t *tracker.Tracker, s *store.Store) error {
			if err := t.ReplaceState(data.Profile, data.Logs); err != nil {
				return err
			}
			if len(data.Goals) > 0 {
				if err := s.Put(store.KeyProgressGoals, data.Goals); err != nil {
					return err
				}
			} else if err := s.Delete(store.KeyProgressGoals); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported data from %s\n", importIn)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
}
