package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Time is an offset into a media object in milliseconds, written in normal play time (NPT)
// like "00:01:30.500".
type Time int64

// TimeOf converts d to a Time, truncated to the millisecond.
func TimeOf(d time.Duration) Time {
	return Time(d / time.Millisecond)
}

// ParseTime parses an NPT offset. It accepts "HH:MM:SS", "MM:SS" and "SS", each with optional fractional seconds.
func ParseTime(s string) (Time, error) {
	value := strings.TrimPrefix(strings.TrimSpace(s), "npt=")
	if value == "" {
		return 0, fmt.Errorf("%w: empty time", ErrMalformed)
	}
	hms := strings.Split(value, ":")
	if len(hms) > 3 {
		return 0, fmt.Errorf("%w: time %q", ErrMalformed, s)
	}

	seconds, err := strconv.ParseFloat(hms[len(hms)-1], 64)
	if err != nil || seconds < 0 || math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return 0, fmt.Errorf("%w: time %q", ErrMalformed, s)
	}
	ms := Time(math.Round(seconds * 1000))

	unit := Time(time.Minute / time.Millisecond)
	for i := len(hms) - 2; i >= 0; i-- {
		n, err := strconv.ParseUint(hms[i], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: time %q", ErrMalformed, s)
		}
		ms += Time(n) * unit
		unit *= 60
	}
	return ms, nil
}

// Duration returns the offset as a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t) * time.Millisecond
}

// String renders the offset as "HH:MM:SS.mmm".
func (t Time) String() string {
	sign, ms := "", uint64(t)
	if t < 0 {
		// -(t+1)+1 stays in range for math.MinInt64
		sign, ms = "-", uint64(-(t+1))+1
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
