package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart_hub/internal/models"
)

// SunsetInput is the user_light keyword that anchors the schedule to sunset.
const SunsetInput = "sunset"

// FallbackLightOn is used when the sunset lookup fails.
var FallbackLightOn = models.TimeOfDay{Hour: 18}

// SunsetResolver yields today's sunset as a UTC time of day, or false on any failure.
type SunsetResolver interface {
	Resolve(ctx context.Context, latitude, longitude float64) (models.TimeOfDay, bool)
}

// Location is the coordinate the hub is installed at.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Schedule is a resolved light window.
type Schedule struct {
	On             models.TimeOfDay
	Off            models.TimeOfDay
	Duration       time.Duration
	SunsetFallback bool // sunset requested but the lookup failed
}

// Calculator turns user schedule input into a concrete UTC window.
type Calculator struct {
	resolver SunsetResolver
	location Location
	now      func() time.Time
}

func NewCalculator(resolver SunsetResolver, location Location) *Calculator {
	return &Calculator{resolver: resolver, location: location, now: time.Now}
}

// IsSunset reports whether lightInput asks for a sunset-anchored schedule.
func IsSunset(lightInput string) bool {
	return strings.EqualFold(lightInput, SunsetInput)
}

// Compute validates both inputs and returns the on/off window.
// Literal times and durations are validated before any sunset lookup is made.
func (c *Calculator) Compute(ctx context.Context, lightInput, durationInput string) (Schedule, error) {
	sunset := IsSunset(lightInput)

	var on models.TimeOfDay
	if !sunset {
		parsed, err := models.ParseTimeOfDay(lightInput)
		if err != nil {
			return Schedule{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, lightInput)
		}
		on = parsed
	}

	d, err := ParseDuration(durationInput)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}

	fallback := false
	if sunset {
		on, fallback = c.resolveSunset(ctx)
	}

	return Schedule{
		On:             on,
		Off:            on.Add(c.now().UTC(), d),
		Duration:       d,
		SunsetFallback: fallback,
	}, nil
}

func (c *Calculator) resolveSunset(ctx context.Context) (models.TimeOfDay, bool) {
	if c.resolver == nil {
		return FallbackLightOn, true
	}
	t, ok := c.resolver.Resolve(ctx, c.location.Latitude, c.location.Longitude)
	if !ok || !t.Valid() {
		return FallbackLightOn, true
	}
	return t, false
}
