package generator

import (
	"fmt"
	"strings"

	"github.com/osteele/liquid"

	"github.com/fundingforward/outreach/internal/domain"
	"github.com/fundingforward/outreach/internal/stage"
)

// Fallback renders the deterministic per-stage templates used whenever
// the generative backend is unavailable or returns unusable output.
type Fallback struct {
	engine *liquid.Engine
}

// NewFallback builds the Liquid engine with the campaign's custom
// filters registered.
func NewFallback() *Fallback {
	engine := liquid.NewEngine()

	// Humanize a machine tag: "housing_support" → "Housing Support".
	engine.RegisterFilter("humanize", func(s string) string {
		words := strings.Fields(strings.ReplaceAll(s, "_", " "))
		for i, w := range words {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
		return strings.Join(words, " ")
	})

	return &Fallback{engine: engine}
}

// Render produces the fallback email for one approved pair. It always
// returns a usable subject and body: if a template fails to render the
// problem is reported as a warning and a plain substitution email is
// used instead, so a batch never dies on content generation.
func (f *Fallback) Render(sc stage.Config, r domain.Recipient, ev domain.Event) (domain.Email, []string) {
	tpl, ok := fallbackTemplates[sc.ID]
	if !ok {
		tpl = genericTemplate
	}
	bindings := f.bindings(r, ev)

	var warnings []string
	subject, err := f.engine.ParseAndRenderString(tpl.Subject, bindings)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("fallback subject render failed: %v", err))
	}
	body, err := f.engine.ParseAndRenderString(tpl.Body, bindings)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("fallback body render failed: %v", err))
	}

	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return plainEmail(r, ev), warnings
	}
	return domain.Email{Subject: subject, Body: body}, warnings
}

// bindings maps record fields into template variables, substituting the
// same neutral defaults the prose was written around.
func (f *Fallback) bindings(r domain.Recipient, ev domain.Event) liquid.Bindings {
	primaryTopic := "funding"
	if topics := r.Topics(); len(topics) > 0 && strings.TrimSpace(topics[0]) != "" {
		primaryTopic = topics[0]
	}
	return liquid.Bindings{
		"name":         orDefault(r.Name(), "there"),
		"organization": orDefault(r.Organization(), "your organization"),
		"title":        orDefault(ev.Title(), "this opportunity"),
		"organizer":    orDefault(ev.Organizer(), "the organizer"),
		"amount_range": orDefault(ev.AmountRange(), "grants available"),
		"deadline":     orDefault(ev.Deadline(), "the deadline"),
		"topic":        primaryTopic,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// plainEmail is the last-resort substitution used if Liquid itself
// errors. Static templates make that near-impossible, but the batch
// contract is that every approved pair gets non-empty content.
func plainEmail(r domain.Recipient, ev domain.Event) domain.Email {
	title := orDefault(ev.Title(), "this opportunity")
	return domain.Email{
		Subject: fmt.Sprintf("%s - Opportunity for %s", title, orDefault(r.Organization(), "your organization")),
		Body: fmt.Sprintf(
			"Hi %s,\n\nI wanted to share %s organised by %s.\n\nGrant amount: %s\nApplication deadline: %s\n\nBest regards,\n\nPriya Singh\nGrants Coordinator\nFunding Forward",
			orDefault(r.Name(), "there"), title, orDefault(ev.Organizer(), "the organizer"),
			orDefault(ev.AmountRange(), "grants available"), orDefault(ev.Deadline(), "the deadline")),
	}
}
