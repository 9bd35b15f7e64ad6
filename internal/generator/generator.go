// Package generator turns approved (recipient, event, stage) triples
// into email content. The primary path delegates to a generative text
// backend; every failure on that path degrades to deterministic
// per-stage templates, so a batch never dies because the backend is
// down.
package generator

import (
	"context"

	"github.com/fundingforward/outreach/internal/domain"
	"github.com/fundingforward/outreach/internal/pkg/logger"
	"github.com/fundingforward/outreach/internal/stage"
)

// Result is the content-generation outcome for one approved pair. When
// FallbackUsed is set, FallbackCause records why the generative path
// was not usable.
type Result struct {
	Email         domain.Email
	FallbackUsed  bool
	FallbackCause string
	Warnings      []string
}

// Generator produces subject/body for approved pairs.
type Generator struct {
	backend  Backend
	fallback *Fallback
}

// New builds a Generator. A nil backend means generation is disabled
// and every pair takes the fallback path.
func New(backend Backend) *Generator {
	return &Generator{backend: backend, fallback: NewFallback()}
}

// Generate produces the email for one approved pair. Backend faults are
// absorbed: they surface as a fallback result with the cause retained
// for audit, never as an error.
func (g *Generator) Generate(ctx context.Context, r domain.Recipient, ev domain.Event, stageID string) Result {
	sc := stage.Lookup(stageID)

	if g.backend == nil {
		return g.renderFallback(sc, r, ev, "generation disabled")
	}

	payload, failure := g.callBackend(ctx, sc, r, ev)
	if failure != nil {
		logger.Warn("generative backend unusable, using fallback",
			"backend", failure.Backend,
			"origin", failure.Origin,
			"stage", stageID,
			"error", failure.Err)
		return g.renderFallback(sc, r, ev, failure.Error())
	}

	return Result{Email: *payload.Email, Warnings: payload.Warnings}
}

// callBackend wraps one backend exchange into an explicit
// success/failure variant instead of letting faults escape.
func (g *Generator) callBackend(ctx context.Context, sc stage.Config, r domain.Recipient, ev domain.Event) (*emailPayload, *BackendFailure) {
	raw, err := g.backend.Complete(ctx, systemPrompt, buildUserPrompt(sc, r, ev))
	if err != nil {
		return nil, &BackendFailure{Backend: g.backend.Name(), Origin: "transport", Err: err}
	}

	payload, err := parsePayload(raw)
	if err != nil {
		return nil, &BackendFailure{Backend: g.backend.Name(), Origin: "parse", Err: err}
	}
	return payload, nil
}

func (g *Generator) renderFallback(sc stage.Config, r domain.Recipient, ev domain.Event, cause string) Result {
	email, warnings := g.fallback.Render(sc, r, ev)
	return Result{
		Email:         email,
		FallbackUsed:  true,
		FallbackCause: cause,
		Warnings:      append(warnings, "Used fallback due to: "+cause),
	}
}
