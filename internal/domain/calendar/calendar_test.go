package calendar

import (
	"math/rand"
	"testing"
	"time"

	domainerrors "rental/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		aStart, aEnd   string
		bStart, bEnd   string
		expectedResult bool
	}{
		{"touching endpoints", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-09", true},
		{"disjoint", "2025-01-01", "2025-01-05", "2025-01-06", "2025-01-09", false},
		{"contained", "2025-01-01", "2025-01-10", "2025-01-03", "2025-01-04", true},
		{"identical", "2025-01-01", "2025-01-05", "2025-01-01", "2025-01-05", true},
		{"single day inside", "2025-01-01", "2025-01-05", "2025-01-03", "2025-01-03", true},
		{"single day adjacent", "2025-01-01", "2025-01-05", "2025-01-06", "2025-01-06", false},
		{"partial", "2025-03-01", "2025-03-05", "2025-03-03", "2025-03-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.expectedResult, got)
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := day("2025-01-01")

	for range 1000 {
		aStart := base.AddDate(0, 0, rng.Intn(60))
		aEnd := aStart.AddDate(0, 0, rng.Intn(10))
		bStart := base.AddDate(0, 0, rng.Intn(60))
		bEnd := bStart.AddDate(0, 0, rng.Intn(10))

		require.Equal(t,
			Overlaps(aStart, aEnd, bStart, bEnd),
			Overlaps(bStart, bEnd, aStart, aEnd),
			"a=%s..%s b=%s..%s", aStart, aEnd, bStart, bEnd,
		)
	}
}

func TestNewRange(t *testing.T) {
	r, err := NewRange(time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC), day("2025-03-05"))
	require.NoError(t, err)
	assert.Equal(t, day("2025-03-01"), r.Start)
	assert.Equal(t, 5, r.Days())
	assert.Equal(t, 4, r.Nights())
	assert.Equal(t, "2025-03-01..2025-03-05", r.String())

	single, err := NewRange(day("2025-03-01"), day("2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, single.Nights())
}

func TestNewRange_Inverted(t *testing.T) {
	_, err := NewRange(day("2025-03-05"), day("2025-03-01"))
	require.Error(t, err)

	var rangeErr *domainerrors.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "2025-03-05", rangeErr.Start)
	assert.Equal(t, "2025-03-01", rangeErr.End)
	assert.Equal(t, 400, rangeErr.HTTPCode())
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2025-03-01", " 2025-03-03 ")
	require.NoError(t, err)
	assert.True(t, r.Overlaps(Range{Start: day("2025-03-03"), End: day("2025-03-09")}))

	_, err = ParseRange("03/01/2025", "2025-03-03")
	var rangeErr *domainerrors.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Contains(t, rangeErr.Details(), "start_date")

	_, err = ParseRange("2025-03-01", "")
	require.ErrorAs(t, err, &rangeErr)
	assert.Contains(t, rangeErr.Details(), "end_date")
}

func TestDate_TruncatesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2025, 3, 2, 3, 0, 0, 0, loc) // 2025-03-01 18:00 UTC

	assert.Equal(t, day("2025-03-01"), Date(in))
}
