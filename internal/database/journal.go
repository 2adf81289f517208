package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/rtauth/internal/models"
)

// RecordEvent appends one placeholder backend call to the journal.
func (d *Database) RecordEvent(ctx context.Context, ev models.AuthEvent) error {
	if strings.TrimSpace(ev.Op) == "" || strings.TrimSpace(ev.Outcome) == "" {
		return wrapEventErr("record", 0, ErrInvalidEvent)
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO auth_events (request_id, op, email_masked, outcome, created_at) VALUES (?, ?, ?, ?, ?)",
		ev.RequestID, ev.Op, nullableString(ev.MaskedEmail), ev.Outcome, ev.CreatedAt)
	return wrapEventErr("record", 0, err)
}

// RecentEvents returns up to limit events, newest first.
func (d *Database) RecentEvents(ctx context.Context, limit int) ([]models.AuthEvent, error) {
	if limit <= 0 {
		return nil, nil
	}
	return d.listEvents(ctx, NewEventQuery().OrderBy("id DESC").Limit(limit))
}

// EventsByOp returns the events recorded for op, newest first.
func (d *Database) EventsByOp(ctx context.Context, op string, limit int) ([]models.AuthEvent, error) {
	return d.listEvents(ctx, NewEventQuery().WhereOp(op).OrderBy("id DESC").Limit(limit))
}

func (d *Database) listEvents(ctx context.Context, q *EventQuery) ([]models.AuthEvent, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapEventErr("list", 0, err)
	}
	defer rows.Close()

	var events []models.AuthEvent
	for rows.Next() {
		var e models.AuthEvent
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Op, &e.MaskedEmail, &e.Outcome, &e.CreatedAt); err != nil {
			return nil, wrapEventErr("scan", e.ID, err)
		}
		events = append(events, e)
	}
	return events, wrapEventErr("list", 0, rows.Err())
}

// CountEvents returns how many journal entries match op and outcome. An
// empty op or outcome matches every entry.
func (d *Database) CountEvents(ctx context.Context, op, outcome string) (int, error) {
	var n int
	query, args := NewEventCount().WhereOp(op).WhereOutcome(outcome).Build()
	err := d.DB.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, wrapEventErr("count", 0, err)
}
