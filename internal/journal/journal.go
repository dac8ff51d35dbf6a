// Package journal records every intent a session applied.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/gradescale/internal/intent"
)

type Event struct {
	Seq       int64  `json:"seq"`
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
	Key       string `json:"key"`
	DataJSON  string `json:"data"`
	CreatedAt int64  `json:"created_at"`
}

type Journal interface {
	Append(ctx context.Context, e Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// Record appends in to j under sessionID.
func Record(ctx context.Context, j Journal, sessionID string, in intent.Intent) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return j.Append(ctx, Event{
		SessionID: sessionID,
		Type:      in.Name(),
		Key:       uuid.NewString(),
		DataJSON:  string(data),
	})
}

type EventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db, now: time.Now} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (session_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SessionID, e.Type, e.Key, e.DataJSON, r.now().Unix())
	return err
}

func (r *EventRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, session_id, typ, key, data, created_at
		   FROM event_log ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.SessionID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Nop discards events; used when no database is configured.
type Nop struct{}

func (Nop) Append(context.Context, Event) error          { return nil }
func (Nop) Recent(context.Context, int) ([]Event, error) { return nil, nil }
