package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundingforward/outreach/internal/domain"
)

// frozenNow is the evaluation instant for every test engine, so
// deadline checks are deterministic.
var frozenNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(mutate ...func(*Config)) *Engine {
	cfg := Config{Now: func() time.Time { return frozenNow }}
	for _, m := range mutate {
		m(&cfg)
	}
	return New(cfg)
}

func validRecipient() domain.Recipient {
	return domain.Recipient{
		"recipient_id":     "r-001",
		"name":             "Asha Rao",
		"email":            "asha@banyancollective.org",
		"organization":     "Banyan Collective",
		"topics":           []any{"housing"},
		"engagement_score": 0.8,
		"opt_out":          false,
	}
}

func validEvent() domain.Event {
	return domain.Event{
		"event_id":   "e-001",
		"title":      "Housing Grants Summit",
		"start_date": "2099-02-01",
		"tags":       []any{"housing", "grants"},
		"organizer":  "Funding Forward",
		"metadata": map[string]any{
			"amount_range":         "$10,000 - $50,000",
			"application_deadline": "2099-01-01",
		},
	}
}

func TestDecide_Approved(t *testing.T) {
	e := newTestEngine()

	d := e.Decide(validRecipient(), validEvent())

	require.True(t, d.Send)
	assert.Equal(t, domain.ReasonApproved, d.Reason)
	assert.Equal(t, []string{"housing"}, d.Overlap)
	assert.Empty(t, d.Warnings)
	assert.Equal(t, domain.ToneEnthusiastic, e.ToneFor(0.8))
}

func TestDecide_OptOutDominates(t *testing.T) {
	e := newTestEngine()

	// Opted out plus a passed deadline plus zero overlap: opt-out is
	// still the reported reason.
	r := validRecipient()
	r["opt_out"] = true
	r["topics"] = []any{"arts"}
	ev := validEvent()
	ev["metadata"] = map[string]any{
		"amount_range":         "$10,000 - $50,000",
		"application_deadline": "2001-01-01",
	}

	d := e.Decide(r, ev)

	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonOptedOut, d.Reason)
	assert.Contains(t, d.Warnings, "Recipient has opted out - DO NOT SEND")
}

func TestDecide_ValidationDominatesEverything(t *testing.T) {
	e := newTestEngine()

	// Missing field plus opt-out plus passed deadline: validation wins.
	r := validRecipient()
	delete(r, "email")
	r["opt_out"] = true
	ev := validEvent()
	ev["metadata"] = map[string]any{
		"amount_range":         "$10,000 - $50,000",
		"application_deadline": "2001-01-01",
	}

	d := e.Decide(r, ev)

	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonValidationFailed, d.Reason)
	assert.Contains(t, d.Warnings, "Missing recipient field: email")
}

func TestDecide_TopicsNotAList(t *testing.T) {
	e := newTestEngine()

	r := validRecipient()
	r["topics"] = "housing"

	d := e.Decide(r, validEvent())

	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonValidationFailed, d.Reason)
	assert.Contains(t, d.Warnings, "recipient.topics must be a list")
}

func TestDecide_DeadlinePassed(t *testing.T) {
	e := newTestEngine()

	ev := validEvent()
	ev["metadata"] = map[string]any{
		"amount_range":         "$10,000 - $50,000",
		"application_deadline": "2025-06-01",
	}

	d := e.Decide(validRecipient(), ev)

	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonDeadlinePassed, d.Reason)
	assert.Contains(t, d.Warnings, "Application deadline has passed - DO NOT SEND")
}

func TestDecide_FutureDeadlineDoesNotBlock(t *testing.T) {
	e := newTestEngine()

	ev := validEvent()
	ev["metadata"] = map[string]any{
		"amount_range":         "$10,000 - $50,000",
		"application_deadline": "2025-07-01",
	}

	d := e.Decide(validRecipient(), ev)
	assert.True(t, d.Send)
}

func TestDecide_MalformedDeadlineFailOpen(t *testing.T) {
	e := newTestEngine()

	ev := validEvent()
	ev["metadata"] = map[string]any{
		"amount_range":         "$10,000 - $50,000",
		"application_deadline": "sometime next spring",
	}

	d := e.Decide(validRecipient(), ev)

	// Fail-open: the pair goes through, but the parse error is kept
	// for audit.
	require.True(t, d.Send)
	assert.Equal(t, domain.ReasonApproved, d.Reason)
	require.Len(t, d.Warnings, 1)
	assert.Contains(t, d.Warnings[0], "Invalid deadline format")
}

func TestDecide_MalformedDeadlineFailClosed(t *testing.T) {
	e := newTestEngine(func(c *Config) { c.DeadlineFailClosed = true })

	ev := validEvent()
	ev["metadata"] = map[string]any{
		"amount_range":         "$10,000 - $50,000",
		"application_deadline": "sometime next spring",
	}

	d := e.Decide(validRecipient(), ev)

	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonDeadlinePassed, d.Reason)
}

func TestDecide_NoTopicMatch(t *testing.T) {
	e := newTestEngine()

	ev := validEvent()
	ev["tags"] = []any{"arts"}

	d := e.Decide(validRecipient(), ev)

	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonNoTopicMatch, d.Reason)
	assert.Empty(t, d.Overlap)
	require.Len(t, d.Warnings, 1)
	assert.Contains(t, d.Warnings[0], "Insufficient topic overlap")
	assert.Contains(t, d.Warnings[0], "housing")
	assert.Contains(t, d.Warnings[0], "arts")
}

func TestDecide_HighMatchProfile(t *testing.T) {
	e := newTestEngine(func(c *Config) { c.TopicMatchThreshold = MatchLevelHigh })

	d := e.Decide(validRecipient(), validEvent())
	require.False(t, d.Send)
	assert.Equal(t, domain.ReasonNoTopicMatch, d.Reason)

	r := validRecipient()
	r["topics"] = []any{"housing", "grants"}
	d = e.Decide(r, validEvent())
	assert.True(t, d.Send)
	assert.Equal(t, []string{"grants", "housing"}, d.Overlap)
}

func TestDecide_Idempotent(t *testing.T) {
	e := newTestEngine()
	r := validRecipient()
	ev := validEvent()

	first := e.Decide(r, ev)
	second := e.Decide(r, ev)

	assert.Equal(t, first, second)
}

func TestToneFor(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		score float64
		want  domain.Tone
	}{
		{0.9, domain.ToneEnthusiastic},
		{0.7, domain.ToneEnthusiastic},
		{0.69, domain.ToneProfessional},
		{0.5, domain.ToneProfessional},
		{0.49, domain.ToneGentle},
		{0.0, domain.ToneGentle},
		{-1.0, domain.ToneGentle},
		{1.5, domain.ToneEnthusiastic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.ToneFor(tt.score), "score %v", tt.score)
	}
}
