package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "18:30:00", want: TimeOfDay{18, 30, 0}},
		{in: "00:00:00", want: TimeOfDay{0, 0, 0}},
		{in: "23:59:59", want: TimeOfDay{23, 59, 59}},
		{in: "24:00:00", wantErr: true},
		{in: "18:30", wantErr: true},
		{in: "sunrise", wantErr: true},
		{in: "", wantErr: true},
		{in: "1:02:03", wantErr: true},
		{in: "18:30:00.5", wantErr: true},
		{in: "18:30:00,999", wantErr: true},
		{in: " 18:30:00 ", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTimeOfDay_AddWrapsPastMidnight(t *testing.T) {
	day := time.Date(2024, 12, 31, 5, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		on   TimeOfDay
		d    time.Duration
		want string
	}{
		{"same day", TimeOfDay{8, 0, 0}, 12 * time.Hour, "20:00:00"},
		{"wraps", TimeOfDay{22, 30, 0}, 2 * time.Hour, "00:30:00"},
		{"wraps year end", TimeOfDay{23, 0, 0}, 3 * time.Hour, "02:00:00"},
		{"full day", TimeOfDay{18, 0, 0}, 24 * time.Hour, "18:00:00"},
		{"multi day", TimeOfDay{18, 0, 0}, 99 * time.Hour, "21:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.on.Add(day, tc.d).String(); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestTimeOfDay_CompareAndValid(t *testing.T) {
	a := TimeOfDay{8, 0, 0}
	b := TimeOfDay{20, 0, 0}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("unexpected ordering between %v and %v", a, b)
	}
	if (TimeOfDay{25, 0, 0}).Valid() {
		t.Fatalf("hour 25 must be invalid")
	}
	if !(TimeOfDay{23, 59, 59}).Valid() {
		t.Fatalf("23:59:59 must be valid")
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(TimeOfDay{7, 5, 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"07:05:03"` {
		t.Fatalf("got %s", b)
	}

	var back TimeOfDay
	if err := json.Unmarshal([]byte(`"bogus"`), &back); err == nil {
		t.Fatalf("expected error decoding bogus time")
	}
}

func TestSensorReading_JSONUsesZSuffixedSeconds(t *testing.T) {
	temp := 29.3
	r := NewSensorReading(&temp, true, time.Date(2023, 2, 23, 18, 22, 28, 999, time.FixedZone("X", 3600)))

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"temperature":29.3,"presence":true,"datetime":"2023-02-23T17:22:28Z"}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}

	noTemp := NewSensorReading(nil, false, time.Date(2023, 2, 23, 18, 22, 28, 0, time.UTC))
	b, _ = json.Marshal(noTemp)
	if string(b) != `{"temperature":null,"presence":false,"datetime":"2023-02-23T18:22:28Z"}` {
		t.Fatalf("unexpected null temperature encoding: %s", b)
	}
}
