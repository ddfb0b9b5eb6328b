package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDayLayout is the only accepted wire format for a time of day.
const TimeOfDayLayout = "15:04:05"

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a UTC wall-clock value without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses a strict zero-padded HH:MM:SS string.
// time.Parse alone accepts "1:02:03" and drops fractional seconds,
// so the input must also round-trip through the layout.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if t.Format(TimeOfDayLayout) != s {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: not in %s form", s, TimeOfDayLayout)
	}
	return TimeOfDayOf(t), nil
}

// TimeOfDayOf extracts the UTC time of day from t, dropping the date.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.UTC().Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// Valid reports whether every field is within its clock range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60
}

// Seconds returns the number of seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after u.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	a, b := t.Seconds(), u.Seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// On anchors t to the UTC calendar date of day.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.UTC().Date()
	return time.Date(y, m, d, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// Add returns the time of day reached after d, wrapping past midnight.
// The date is carried by a real timestamp so the wrap is done by the time package.
func (t TimeOfDay) Add(day time.Time, d time.Duration) TimeOfDay {
	d %= secondsPerDay * time.Second
	return TimeOfDayOf(t.On(day).Add(d))
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
