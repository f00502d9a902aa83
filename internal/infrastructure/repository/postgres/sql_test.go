package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("sql.ErrNoRows must classify as not found")
	}
	if isNotFound(nil) {
		t.Fatalf("nil is not a not-found error")
	}
}

func TestNullTimeRoundTrip(t *testing.T) {
	if got := nullTimePtr(sql.NullTime{}); got != nil {
		t.Fatalf("invalid NullTime must map to nil, got %v", got)
	}
	if got := ptrNullTime(nil); got.Valid {
		t.Fatalf("nil pointer must map to invalid NullTime")
	}

	at := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)
	roundTripped := nullTimePtr(ptrNullTime(&at))
	if roundTripped == nil || !roundTripped.Equal(at) {
		t.Fatalf("round trip lost the value: %v", roundTripped)
	}
}

func TestNullString(t *testing.T) {
	if nullString("").Valid {
		t.Fatalf("empty string must map to NULL")
	}
	if got := nullString("pr-1"); !got.Valid || got.String != "pr-1" {
		t.Fatalf("unexpected: %+v", got)
	}
}
