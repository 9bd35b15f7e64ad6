package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPassed_ZoneAwareTimestamps(t *testing.T) {
	d := DeadlineEvaluator{Loc: ReferenceZone("")}

	passed, parseErr := d.IsPassed("2025-06-15T11:00:00Z", frozenNow)
	assert.True(t, passed)
	assert.Empty(t, parseErr)

	passed, parseErr = d.IsPassed("2025-06-15T13:00:00Z", frozenNow)
	assert.False(t, passed)
	assert.Empty(t, parseErr)
}

func TestIsPassed_NaiveTimestampsUseReferenceZone(t *testing.T) {
	d := DeadlineEvaluator{Loc: ReferenceZone("")}

	// Midnight 2025-06-15 in UTC+05:30 is 2025-06-14T18:30Z.
	passed, parseErr := d.IsPassed("2025-06-15", time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC))
	require.Empty(t, parseErr)
	assert.True(t, passed)

	passed, parseErr = d.IsPassed("2025-06-15", time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC))
	require.Empty(t, parseErr)
	assert.False(t, passed)
}

func TestIsPassed_LooseLayouts(t *testing.T) {
	d := DeadlineEvaluator{Loc: time.UTC}

	for _, deadline := range []string{
		"2001-03-04 15:04:05",
		"2001-03-04 15:04",
		"January 2, 2001",
		"Jan 2, 2001",
		"02/01/2001",
	} {
		passed, parseErr := d.IsPassed(deadline, frozenNow)
		assert.Empty(t, parseErr, "deadline %q", deadline)
		assert.True(t, passed, "deadline %q", deadline)
	}
}

func TestIsPassed_MalformedFailsOpen(t *testing.T) {
	d := DeadlineEvaluator{Loc: ReferenceZone("")}

	for _, deadline := range []string{"", "not a date", "2025-13-45", "soon"} {
		passed, parseErr := d.IsPassed(deadline, frozenNow)
		assert.False(t, passed, "deadline %q", deadline)
		assert.NotEmpty(t, parseErr, "deadline %q", deadline)
		assert.Contains(t, parseErr, "Invalid deadline format")
	}
}

func TestReferenceZone(t *testing.T) {
	// Whatever the host tzdata situation, the default zone must sit at
	// UTC+05:30.
	loc := ReferenceZone("")
	_, offset := time.Date(2025, 6, 15, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, istOffsetSeconds, offset)

	// Unknown names fall back rather than erroring.
	loc = ReferenceZone("Nowhere/Imaginary")
	_, offset = time.Date(2025, 6, 15, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, istOffsetSeconds, offset)
}
