package engine

import (
	"fmt"
	"strings"
	"time"
)

// istOffsetSeconds is the fixed UTC+05:30 offset used when the IANA
// zone database is unavailable.
const istOffsetSeconds = 5*3600 + 30*60

// ReferenceZone resolves the campaign's reference timezone. Naive
// deadline strings are assumed to be in this zone. Falls back to a
// fixed UTC+05:30 offset when the zone database cannot resolve the
// name, so behavior does not depend on host tzdata.
func ReferenceZone(name string) *time.Location {
	if name == "" {
		name = "Asia/Kolkata"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("UTC+05:30", istOffsetSeconds)
}

// naiveLayouts are tried in order for deadline strings that carry no
// timezone of their own.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006",
}

// DeadlineEvaluator decides whether an application deadline has passed.
type DeadlineEvaluator struct {
	// Loc is the zone applied to timestamps that carry none. Nil means
	// UTC.
	Loc *time.Location
}

// IsPassed reports whether the deadline is strictly before now,
// comparing both instants in UTC. A parse failure is fail-open: it
// returns false plus a non-empty message the caller must surface as a
// warning.
func (d DeadlineEvaluator) IsPassed(deadline string, now time.Time) (passed bool, parseErr string) {
	t, err := d.parse(strings.TrimSpace(deadline))
	if err != nil {
		return false, fmt.Sprintf("Invalid deadline format: %v", err)
	}
	return now.UTC().After(t.UTC()), ""
}

func (d DeadlineEvaluator) parse(s string) (time.Time, error) {
	// Zone-aware forms first; these need no localization.
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05 -0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	loc := d.Loc
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
