// Package calendar holds the date arithmetic behind booking conflicts.
// All dates are calendar days represented as UTC midnights; ranges are inclusive on both ends.
package calendar

import (
	"strings"
	"time"

	domainerrors "rental/internal/domain/errors"
)

// DateLayout is the ISO-8601 calendar date format accepted and rendered by the API.
const DateLayout = "2006-01-02"

// Overlaps reports whether the inclusive ranges [aStart,aEnd] and [bStart,bEnd]
// share at least one day. Touching endpoints overlap.
// Both ranges must already satisfy start <= end.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(aEnd.Before(bStart) || bEnd.Before(aStart))
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar day.
// field names the input in the returned error.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, domainerrors.NewUnparseableDateError(field, value)
	}

	return t, nil
}

// Range is an inclusive span of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange normalizes both ends to calendar days and rejects inverted ranges.
func NewRange(start, end time.Time) (Range, error) {
	r := Range{Start: Date(start), End: Date(end)}
	if r.Start.After(r.End) {
		return Range{}, domainerrors.NewInvertedRangeError(r.Start, r.End)
	}

	return r, nil
}

// ParseRange parses and validates a pair of YYYY-MM-DD strings.
func ParseRange(start, end string) (Range, error) {
	s, err := ParseDate("start_date", start)
	if err != nil {
		return Range{}, err
	}

	e, err := ParseDate("end_date", end)
	if err != nil {
		return Range{}, err
	}

	return NewRange(s, e)
}

// Overlaps reports whether r and other share at least one day.
func (r Range) Overlaps(other Range) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Days is the number of calendar days covered, counting both ends.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Nights is the number of nights a stay over r lasts.
func (r Range) Nights() int {
	return r.Days() - 1
}

func (r Range) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
