package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart_hub/internal/models"
)

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	if got := normalizeToUTC(time.Time{}); !got.IsZero() {
		t.Fatalf("zero time must stay zero, got %v", got)
	}
	in := time.Date(2025, time.August, 1, 12, 34, 56, 0, time.FixedZone("UTC+3", 3*3600))
	got := normalizeToUTC(in)
	want := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
	if got.Location() != time.UTC || !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func Test_normalizeEventType(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                    "",
		"  SETTINGS_UPDATE ":  "SETTINGS_UPDATE",
		"sunset_fallback":     "SUNSET_FALLBACK",
		" decision_anomaly  ": "DECISION_ANOMALY",
	}
	for in, want := range cases {
		if got := normalizeEventType(in); got != want {
			t.Fatalf("normalizeEventType(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestEventLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{events: []models.HubEvent{{EventID: "1"}}}
	svc := NewEventLogService(frepo)

	from := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	to := time.Date(2025, time.October, 1, 12, 30, 0, 0, time.FixedZone("UTC-2", -2*3600))

	out, err := svc.List(context.Background(), LogFilter{From: from, To: to, Type: "  sunset_fallback "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}
	if !frepo.gotFrom.Equal(time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)) {
		t.Fatalf("repo gotFrom=%v", frepo.gotFrom)
	}
	if !frepo.gotTo.Equal(time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("repo gotTo=%v", frepo.gotTo)
	}
	if frepo.gotType != models.EventSunsetFallback {
		t.Fatalf("repo gotType=%q", frepo.gotType)
	}
}

func TestEventLogService_List_ValidationError(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{}
	svc := NewEventLogService(frepo)

	_, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange; got %v", err)
	}
	if frepo.calls != 0 {
		t.Fatalf("repo should not be called on validation error, calls=%d", frepo.calls)
	}
}

func TestEventLogService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{listErr: errDown}
	svc := NewEventLogService(frepo)

	if _, err := svc.List(context.Background(), LogFilter{}); !errors.Is(err, errDown) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}
