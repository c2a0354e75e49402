package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned for schedule times outside HH:MM:SS ranges
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM:SS")

// TimeOfDay is a wall-clock time with second resolution, stored as
// seconds since midnight (0..86399).
type TimeOfDay int

const secondsPerDay = 24 * 60 * 60

// ParseTimeOfDay parses "H:M:S". Only numeric ranges are checked, so
// "12:5:00" is accepted and canonicalized to 12:05:00.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	limits := [3]int{23, 59, 59}
	var fields [3]int
	for i, p := range parts {
		if p == "" || strings.HasPrefix(p, "+") || strings.HasPrefix(p, "-") {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		fields[i] = v
	}

	return TimeOfDay(fields[0]*3600 + fields[1]*60 + fields[2]), nil
}

// MustTimeOfDay is ParseTimeOfDay for literals known to be valid
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayOf returns the time of day of t in t's location
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(h*3600 + m*60 + s)
}

// String returns the canonical zero-padded HH:MM:SS form
func (t TimeOfDay) String() string {
	v := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", v/3600, v%3600/60, v%60)
}

// Valid reports whether t lies within a single day
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < secondsPerDay
}

// Value stores the canonical text form so lexical order matches time order
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("time of day out of range: %d", int(t))
	}
	return t.String(), nil
}

// Scan implements sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
