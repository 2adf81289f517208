package database

import (
	"fmt"
	"strings"
)

const eventColumns = "id, request_id, op, COALESCE(email_masked, ''), outcome, created_at"

// EventQuery builds SELECT statements over auth_events.
type EventQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewEventQuery() *EventQuery {
	return &EventQuery{columns: eventColumns}
}

// NewEventCount selects COUNT(*) instead of event rows.
func NewEventCount() *EventQuery {
	return &EventQuery{columns: "COUNT(*)"}
}

func (q *EventQuery) Where(filter string, args ...interface{}) *EventQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// WhereOp filters by operation; an empty op matches every event.
func (q *EventQuery) WhereOp(op string) *EventQuery {
	if op == "" {
		return q
	}
	return q.Where("op = ?", op)
}

func (q *EventQuery) WhereOutcome(outcome string) *EventQuery {
	if outcome == "" {
		return q
	}
	return q.Where("outcome = ?", outcome)
}

func (q *EventQuery) OrderBy(orderBy string) *EventQuery {
	q.orderBy = orderBy
	return q
}

func (q *EventQuery) Limit(limit int) *EventQuery {
	q.limit = limit
	return q
}

func (q *EventQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM auth_events", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
