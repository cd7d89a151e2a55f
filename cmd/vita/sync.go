package vita

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
	"github.com/vitacli/vita/internal/syncq"
)

var (
	syncBaseURL      string
	syncAuthToken    string
	queueActionType  string
	queueEndpoint    string
	queuePayloadJSON string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Queue and replay offline mutations against a remote API",
}

var syncQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Queue a mutation for later replay",
	RunE: func(cmd *cobra.Command, args []string) error {
		actionType := model.ActionType(strings.ToUpper(strings.TrimSpace(queueActionType)))
		switch actionType {
		case model.ActionCreate, model.ActionUpdate, model.ActionDelete:
		default:
			return fmt.Errorf("invalid --type %q (use CREATE, UPDATE, or DELETE)", queueActionType)
		}
		if strings.TrimSpace(queueEndpoint) == "" {
			return fmt.Errorf("--endpoint is required")
		}
		var data any
		if queuePayloadJSON != "" {
			if err := json.Unmarshal([]byte(queuePayloadJSON), &data); err != nil {
				return fmt.Errorf("invalid --data JSON: %w", err)
			}
		}

		return withStore(func(s *store.Store) error {
			q, err := syncq.New(s, syncLogger(cmd))
			if err != nil {
				return err
			}
			action, err := q.Enqueue(actionType, queueEndpoint, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued %s %s (%s)\n", action.Type, action.Endpoint, action.ID)
			return nil
		})
	},
}

var syncListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending actions in replay order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			q, err := syncq.New(s, syncLogger(cmd))
			if err != nil {
				return err
			}
			pending := q.Pending()
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending actions")
				return nil
			}
			for _, a := range pending {
				queued := time.UnixMilli(a.Timestamp).Format("2006-01-02 15:04")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (queued %s)\n", a.ID, a.Type, a.Endpoint, queued)
			}
			return nil
		})
	},
}

var syncReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay pending actions in FIFO order",
	Long:  "Replay sends every pending action against the remote API in order. On full success the queue is cleared; any failure keeps the whole queue for a later attempt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(syncBaseURL) == "" {
			return fmt.Errorf("--base-url is required")
		}
		return withStore(func(s *store.Store) error {
			q, err := syncq.New(s, syncLogger(cmd))
			if err != nil {
				return err
			}
			q.AuthToken = syncAuthToken

			count := len(q.Pending())
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending actions")
				return nil
			}
			if err := q.Replay(cmd.Context(), syncBaseURL); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replayed %d actions\n", count)
			return nil
		})
	},
}

func syncLogger(cmd *cobra.Command) zerolog.Logger {
	return zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncQueueCmd, syncListCmd, syncReplayCmd)

	syncQueueCmd.Flags().StringVar(&queueActionType, "type", "", "Action type: CREATE, UPDATE, or DELETE")
	syncQueueCmd.Flags().StringVar(&queueEndpoint, "endpoint", "", "API endpoint path, e.g. /api/logs")
	syncQueueCmd.Flags().StringVar(&queuePayloadJSON, "data", "", "JSON payload (omitted for DELETE)")
	_ = syncQueueCmd.MarkFlagRequired("type")
	_ = syncQueueCmd.MarkFlagRequired("endpoint")

	syncReplayCmd.Flags().StringVar(&syncBaseURL, "base-url", "", "Remote API base URL")
	syncReplayCmd.Flags().StringVar(&syncAuthToken, "token", "", "Bearer token for the remote API")
}
