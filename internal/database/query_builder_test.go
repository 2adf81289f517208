package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/akyairhashvil/rtauth/internal/testutil"
)

func TestEventQueryBuild(t *testing.T) {
	query, args := NewEventQuery().WhereOp("login").WhereOutcome("").OrderBy("id DESC").Limit(3).Build()
	want := "SELECT " + eventColumns + " FROM auth_events WHERE op = ? ORDER BY id DESC LIMIT 3"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 1 || args[0] != "login" {
		t.Fatalf("args = %v", args)
	}

	query, args = NewEventCount().WhereOp("").Build()
	if query != "SELECT COUNT(*) FROM auth_events" || len(args) != 0 {
		t.Fatalf("count query = %q args = %v", query, args)
	}
}

func TestEventsByOp(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for _, ev := range []models.AuthEvent{
		testutil.NewAuthEvent().WithOp("login").WithOutcome(models.OutcomeFailure).Build(),
		testutil.NewAuthEvent().WithOp("signup").Build(),
		testutil.NewAuthEvent().WithOp("login").Build(),
	} {
		if err := db.RecordEvent(ctx, ev); err != nil {
			t.Fatalf("RecordEvent failed: %v", err)
		}
	}
	events, err := db.EventsByOp(ctx, "login", 0)
	if err != nil {
		t.Fatalf("EventsByOp failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 login events, got %d", len(events))
	}
	if events[0].Outcome != models.OutcomeSuccess || events[1].Outcome != models.OutcomeFailure {
		t.Fatalf("expected newest first, got %s then %s", events[0].Outcome, events[1].Outcome)
	}

	failed, err := db.CountEvents(ctx, "login", models.OutcomeFailure)
	if err != nil || failed != 1 {
		t.Fatalf("CountEvents(login, failure) = %d, %v", failed, err)
	}
	failed, err = db.CountEvents(ctx, "", models.OutcomeFailure)
	if err != nil || failed != 1 {
		t.Fatalf("CountEvents(failure) = %d, %v", failed, err)
	}
}

func TestCountQueryFiltersOutcome(t *testing.T) {
	query, args := NewEventCount().WhereOp("signup").WhereOutcome(models.OutcomeFailure).Build()
	if query != "SELECT COUNT(*) FROM auth_events WHERE op = ? AND outcome = ?" {
		t.Fatalf("query = %q", query)
	}
	if len(args) != 2 || args[0] != "signup" || args[1] != models.OutcomeFailure {
		t.Fatalf("args = %v", args)
	}
}

func TestRecordEventEmptyMaskStoredAsNull(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	ev := testutil.NewAuthEvent().Build()
	ev.MaskedEmail = ""
	if err := db.RecordEvent(ctx, ev); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}
	var nulls int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM auth_events WHERE email_masked IS NULL").Scan(&nulls); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if nulls != 1 {
		t.Fatalf("expected empty mask stored as NULL")
	}
	events, err := db.RecentEvents(ctx, 1)
	if err != nil || len(events) != 1 || events[0].MaskedEmail != "" {
		t.Fatalf("RecentEvents = %+v, %v", events, err)
	}
}
