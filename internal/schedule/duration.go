package schedule

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidFormat     = errors.New("invalid duration format, use XhYmZs")
	ErrInvalidTimeFormat = errors.New("invalid user_light time format, use HH:MM:SS or 'sunset'")
	ErrInvalidDuration   = errors.New("invalid light duration")
)

// Prefix match: trailing text after the last recognized segment is ignored.
var durationPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?`)

var durationUnits = [...]time.Duration{time.Hour, time.Minute, time.Second}

// ParseDuration parses compact strings such as "2h30m", "45s" or "99h".
// At least one of the hour, minute or second segments must be present.
func ParseDuration(s string) (time.Duration, error) {
	groups := durationPattern.FindStringSubmatch(s)
	if groups == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var (
		total time.Duration
		found bool
	)
	for i, g := range groups[1:] {
		if g == "" {
			continue
		}
		found = true
		n, err := strconv.ParseInt(g, 10, 64)
		if err != nil || n > math.MaxInt64/int64(durationUnits[i]) {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidFormat, s)
		}
		part := time.Duration(n) * durationUnits[i]
		if total > math.MaxInt64-part {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidFormat, s)
		}
		total += part
	}
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return total, nil
}
