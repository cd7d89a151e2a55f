// Package syncq is a FIFO queue of deferred write operations, replayed
// against a remote API once connectivity is available.
package syncq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
)

const defaultTimeout = 12 * time.Second

// Queue holds pending actions in enqueue order. Replay either drains the
// whole queue or leaves it intact for the next attempt; there is no partial
// clearing and no backoff between actions.
type Queue struct {
	store      *store.Store
	HTTPClient *http.Client
	AuthToken  string

	log     zerolog.Logger
	actions []model.PendingAction
}

// New loads the persisted queue, if any.
func New(s *store.Store, log zerolog.Logger) (*Queue, error) {
	q := &Queue{store: s, log: log}
	if _, err := s.Get(store.KeyPendingActions, &q.actions); err != nil {
		return nil, fmt.Errorf("load pending actions: %w", err)
	}
	return q, nil
}

// Enqueue appends an action and persists the queue.
func (q *Queue) Enqueue(actionType model.ActionType, endpoint string, data any) (model.PendingAction, error) {
	action := model.PendingAction{
		ID:        uuid.NewString(),
		Type:      actionType,
		Endpoint:  endpoint,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
	q.actions = append(q.actions, action)
	if err := q.persist(); err != nil {
		return model.PendingAction{}, err
	}
	q.log.Debug().Str("id", action.ID).Str("endpoint", endpoint).Msg("queued offline action")
	return action, nil
}

// Pending returns the queued actions in replay order.
func (q *Queue) Pending() []model.PendingAction {
	return q.actions
}

// Replay sends every queued action against baseURL in FIFO order. On full
// success the queue is cleared; any failure aborts and keeps the entire
// queue for a later attempt.
func (q *Queue) Replay(ctx context.Context, baseURL string) error {
	if len(q.actions) == 0 {
		return nil
	}

	client := q.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	for _, action := range q.actions {
		if err := q.send(ctx, client, baseURL, action); err != nil {
			q.log.Warn().Err(err).Str("id", action.ID).Msg("replay failed, keeping queue")
			return fmt.Errorf("replay action %s: %w", action.ID, err)
		}
	}

	q.actions = nil
	if err := q.store.Delete(store.KeyPendingActions); err != nil {
		return fmt.Errorf("clear pending actions: %w", err)
	}
	q.log.Info().Msg("offline queue drained")
	return nil
}

func (q *Queue) send(ctx context.Context, client *http.Client, baseURL string, action model.PendingAction) error {
	var method string
	switch action.Type {
	case model.ActionCreate:
		method = http.MethodPost
	case model.ActionUpdate:
		method = http.MethodPut
	case model.ActionDelete:
		method = http.MethodDelete
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}

	var body *bytes.Reader
	if action.Type != model.ActionDelete {
		payload, err := json.Marshal(action.Data)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	url := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(action.Endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if q.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+q.AuthToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (q *Queue) persist() error {
	if err := q.store.Put(store.KeyPendingActions, q.actions); err != nil {
		return fmt.Errorf("persist pending actions: %w", err)
	}
	return nil
}
