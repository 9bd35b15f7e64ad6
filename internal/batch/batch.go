// Package batch runs the stage × recipient × event loop: eligibility
// decision, content generation, statistics, and per-stage output flush.
// Processing is synchronous and single-threaded; each pair is
// independent and the only side effect is the optional backend call.
package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fundingforward/outreach/internal/domain"
	"github.com/fundingforward/outreach/internal/engine"
	"github.com/fundingforward/outreach/internal/generator"
	"github.com/fundingforward/outreach/internal/pkg/logger"
	"github.com/fundingforward/outreach/internal/storage"
)

// Orchestrator wires the engine, generator, and store into one run.
type Orchestrator struct {
	engine    *engine.Engine
	generator *generator.Generator
	store     *storage.Store
	now       func() time.Time
}

// New builds an Orchestrator. now may be nil for the wall clock; tests
// freeze it.
func New(eng *engine.Engine, gen *generator.Generator, store *storage.Store, now func() time.Time) *Orchestrator {
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{engine: eng, generator: gen, store: store, now: now}
}

// Stats aggregates outcomes across all stages of one run.
type Stats struct {
	Total     int
	Generated int
	Blocked   int
	ByReason  map[domain.Reason]int
}

// Run processes every (recipient, event) pair for each selected stage,
// flushing one output document per stage. Only storage failures abort
// the run; decision and generation outcomes are data, not errors.
func (o *Orchestrator) Run(ctx context.Context, recipients []domain.Recipient, events []domain.Event, stages []string) (Stats, []domain.StageOutput, error) {
	runID := uuid.NewString()
	stats := Stats{ByReason: map[domain.Reason]int{}}
	outputs := make([]domain.StageOutput, 0, len(stages))

	for _, stageID := range stages {
		logger.Info("generating stage", "stage", stageID, "run_id", runID)

		records := make([]domain.EmailRecord, 0, len(recipients)*len(events))
		stageStats := domain.Statistics{ByReason: map[domain.Reason]int{}}

		for _, r := range recipients {
			for _, ev := range events {
				rec := o.processPair(ctx, r, ev, stageID)
				records = append(records, rec)

				stats.Total++
				stageStats.Total++
				if rec.Status == domain.StatusGenerated {
					stats.Generated++
					stageStats.Generated++
					logger.Debug("email generated",
						"stage", stageID, "recipient", rec.RecipientID, "event", rec.EventID)
				} else {
					stats.Blocked++
					stageStats.Blocked++
					stats.ByReason[rec.Reason]++
					stageStats.ByReason[rec.Reason]++
					logger.Debug("pair blocked",
						"stage", stageID, "recipient", rec.RecipientID,
						"event", rec.EventID, "reason", rec.Reason)
				}
			}
		}

		out := domain.StageOutput{
			Stage:       stageID,
			RunID:       runID,
			GeneratedAt: o.now(),
			Statistics:  stageStats,
			Emails:      records,
		}
		path, err := o.store.WriteStageOutput(out)
		if err != nil {
			return stats, outputs, err
		}
		outputs = append(outputs, out)
		logger.Info("stage output written",
			"stage", stageID, "path", path,
			"generated", stageStats.Generated, "blocked", stageStats.Blocked)
	}

	return stats, outputs, nil
}

func (o *Orchestrator) processPair(ctx context.Context, r domain.Recipient, ev domain.Event, stageID string) domain.EmailRecord {
	decision := o.engine.Decide(r, ev)

	rec := domain.EmailRecord{
		RecipientID:  r.ID(),
		EventID:      ev.ID(),
		Stage:        stageID,
		Reason:       decision.Reason,
		TopicOverlap: decision.Overlap,
		Warnings:     decision.Warnings,
	}
	if !decision.Send {
		rec.Status = domain.StatusBlocked
		return rec
	}

	result := o.generator.Generate(ctx, r, ev, stageID)
	rec.Status = domain.StatusGenerated
	rec.Email = &result.Email
	rec.Tone = o.engine.ToneFor(r.EngagementScore())
	rec.FallbackUsed = result.FallbackUsed
	rec.FallbackCause = result.FallbackCause
	rec.Warnings = append(rec.Warnings, result.Warnings...)
	rec.GeneratedAt = o.now()
	return rec
}
