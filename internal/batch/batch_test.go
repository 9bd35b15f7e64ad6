package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundingforward/outreach/internal/domain"
	"github.com/fundingforward/outreach/internal/engine"
	"github.com/fundingforward/outreach/internal/generator"
	"github.com/fundingforward/outreach/internal/storage"
)

var frozenNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testRecipients() []domain.Recipient {
	return []domain.Recipient{
		{
			"recipient_id": "r-001", "name": "Asha Rao",
			"email": "asha@banyancollective.org", "organization": "Banyan Collective",
			"topics": []any{"housing"}, "engagement_score": 0.8, "opt_out": false,
		},
		{
			"recipient_id": "r-002", "name": "Ben Okafor",
			"email": "ben@riversidearts.org", "organization": "Riverside Arts",
			"topics": []any{"arts"}, "engagement_score": 0.4, "opt_out": false,
		},
		{
			"recipient_id": "r-003", "name": "Carla Mendes",
			"email": "carla@mendesfund.org", "organization": "Mendes Fund",
			"topics": []any{"housing"}, "engagement_score": 0.6, "opt_out": true,
		},
	}
}

func testEvents() []domain.Event {
	return []domain.Event{
		{
			"event_id": "e-001", "title": "Housing Grants Summit",
			"start_date": "2099-02-01", "tags": []any{"housing", "grants"},
			"organizer": "Funding Forward",
			"metadata": map[string]any{
				"amount_range":         "$10,000 - $50,000",
				"application_deadline": "2099-01-01",
			},
		},
	}
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, string) {
	t.Helper()
	dir := t.TempDir()
	eng := engine.New(engine.Config{Now: func() time.Time { return frozenNow }})
	gen := generator.New(nil) // deterministic templates only
	orch := New(eng, gen, storage.New(dir), func() time.Time { return frozenNow })
	return orch, dir
}

func TestRun_FullSequence(t *testing.T) {
	orch, dir := newTestOrchestrator(t)

	stats, outputs, err := orch.Run(context.Background(), testRecipients(), testEvents(), []string{"0", "1"})
	require.NoError(t, err)

	// 3 recipients x 1 event x 2 stages.
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Generated)
	assert.Equal(t, 4, stats.Blocked)
	assert.Equal(t, 2, stats.ByReason[domain.ReasonNoTopicMatch])
	assert.Equal(t, 2, stats.ByReason[domain.ReasonOptedOut])

	require.Len(t, outputs, 2)
	for _, out := range outputs {
		assert.Equal(t, outputs[0].RunID, out.RunID)
		assert.Equal(t, frozenNow, out.GeneratedAt)
		assert.Equal(t, 3, out.Statistics.Total)
		require.Len(t, out.Emails, 3)

		_, err := os.Stat(filepath.Join(dir, "day_"+out.Stage+"_emails.json"))
		assert.NoError(t, err)
	}
}

func TestRun_RecordShapes(t *testing.T) {
	orch, _ := newTestOrchestrator(t)

	_, outputs, err := orch.Run(context.Background(), testRecipients(), testEvents(), []string{"1"})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	records := outputs[0].Emails

	// Pair order is recipients x events, unchanged between runs.
	approved := records[0]
	assert.Equal(t, "r-001", approved.RecipientID)
	assert.Equal(t, domain.StatusGenerated, approved.Status)
	assert.Equal(t, domain.ReasonApproved, approved.Reason)
	require.NotNil(t, approved.Email)
	assert.NotEmpty(t, approved.Email.Subject)
	assert.NotEmpty(t, approved.Email.Body)
	assert.Equal(t, domain.ToneEnthusiastic, approved.Tone)
	assert.Equal(t, []string{"housing"}, approved.TopicOverlap)
	assert.True(t, approved.FallbackUsed)
	assert.Equal(t, "generation disabled", approved.FallbackCause)
	assert.Equal(t, frozenNow, approved.GeneratedAt)

	noMatch := records[1]
	assert.Equal(t, "r-002", noMatch.RecipientID)
	assert.Equal(t, domain.StatusBlocked, noMatch.Status)
	assert.Equal(t, domain.ReasonNoTopicMatch, noMatch.Reason)
	assert.Nil(t, noMatch.Email)
	assert.Empty(t, noMatch.TopicOverlap)
	require.NotEmpty(t, noMatch.Warnings)
	assert.Contains(t, noMatch.Warnings[0], "Insufficient topic overlap")

	optedOut := records[2]
	assert.Equal(t, "r-003", optedOut.RecipientID)
	assert.Equal(t, domain.ReasonOptedOut, optedOut.Reason)
	assert.Nil(t, optedOut.Email)
	// Overlap diagnostics survive even on blocked pairs.
	assert.Equal(t, []string{"housing"}, optedOut.TopicOverlap)
}

func TestRun_DeterministicAcrossRuns(t *testing.T) {
	orch, _ := newTestOrchestrator(t)
	ctx := context.Background()

	_, first, err := orch.Run(ctx, testRecipients(), testEvents(), []string{"1"})
	require.NoError(t, err)
	_, second, err := orch.Run(ctx, testRecipients(), testEvents(), []string{"1"})
	require.NoError(t, err)

	// Run ids differ; everything else is identical.
	first[0].RunID = ""
	second[0].RunID = ""
	assert.Equal(t, first, second)
}

func TestRun_UnwritableOutputIsFatal(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	eng := engine.New(engine.Config{Now: func() time.Time { return frozenNow }})
	orch := New(eng, generator.New(nil), storage.New(blocker), func() time.Time { return frozenNow })

	_, _, err := orch.Run(context.Background(), testRecipients(), testEvents(), []string{"1"})
	assert.Error(t, err)
}
