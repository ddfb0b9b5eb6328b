package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"smart_hub/internal/models"
	"smart_hub/internal/schedule"
)

// fakeEventRepo records appended events and captures List arguments.
type fakeEventRepo struct {
	mu sync.Mutex

	appended  []models.HubEvent
	appendErr error

	gotFrom time.Time
	gotTo   time.Time
	gotType string
	events  []models.HubEvent
	listErr error
	calls   int
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.HubEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.HubEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.listErr
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

type fakePublisher struct {
	mu        sync.Mutex
	published []models.ActuatorCommand
	err       error
}

func (p *fakePublisher) Publish(cmd models.ActuatorCommand) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, cmd)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

// stubCalculator returns a fixed schedule or error.
type stubCalculator struct {
	sch   schedule.Schedule
	err   error
	calls int
}

func (c *stubCalculator) Compute(ctx context.Context, lightInput, durationInput string) (schedule.Schedule, error) {
	c.calls++
	return c.sch, c.err
}

var errDown = errors.New("db down")

func fixedClock(h, m, s int) func() time.Time {
	return func() time.Time { return time.Date(2025, 7, 14, h, m, s, 0, time.UTC) }
}

func tod(h, m, s int) models.TimeOfDay {
	return models.TimeOfDay{Hour: h, Minute: m, Second: s}
}

func ptr(f float64) *float64 { return &f }
