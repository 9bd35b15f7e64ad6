// Package engine implements the eligibility decision core: schema
// validation, deadline policy, topic targeting, and tone selection.
// Everything here is pure; the evaluation clock and all policy knobs
// are injected so decisions are deterministic under test.
package engine

import (
	"fmt"
	"time"

	"github.com/fundingforward/outreach/internal/domain"
)

// Topic match profiles. Medium (one shared tag) is the default gate;
// high is the stricter profile for targeted sends.
const (
	MatchLevelMedium = 1
	MatchLevelHigh   = 2
)

// Config carries the decision policy. Zero values are replaced with the
// standard policy by New.
type Config struct {
	// TopicMatchThreshold is the minimum overlap size for approval.
	TopicMatchThreshold int
	// DeadlineFailClosed blocks pairs whose deadline cannot be parsed
	// instead of the default fail-open behavior.
	DeadlineFailClosed bool
	// EngagementHigh and EngagementLow are the tone cutoffs.
	EngagementHigh float64
	EngagementLow  float64
	// Zone is applied to deadline strings without timezone info.
	Zone *time.Location
	// Now supplies the evaluation instant; tests freeze it.
	Now func() time.Time
}

// Engine applies the eligibility policy to (recipient, event) pairs.
type Engine struct {
	cfg      Config
	deadline DeadlineEvaluator
}

// New builds an Engine, filling unset policy fields with defaults.
func New(cfg Config) *Engine {
	if cfg.TopicMatchThreshold <= 0 {
		cfg.TopicMatchThreshold = MatchLevelMedium
	}
	if cfg.EngagementHigh == 0 {
		cfg.EngagementHigh = 0.7
	}
	if cfg.EngagementLow == 0 {
		cfg.EngagementLow = 0.5
	}
	if cfg.Zone == nil {
		cfg.Zone = ReferenceZone("")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{cfg: cfg, deadline: DeadlineEvaluator{Loc: cfg.Zone}}
}

// Decide returns the send/block verdict for one pair. Checks run in
// strict order: validation, opt-out, deadline, topic overlap. The first
// disqualifying condition wins, so a malformed record or an opted-out
// recipient is never reported as a topic mismatch.
func (e *Engine) Decide(r domain.Recipient, ev domain.Event) domain.Decision {
	overlap := Overlap(r.Topics(), ev.Tags())

	var warnings []string
	rErrs := ValidateRecipient(r)
	eErrs := ValidateEvent(ev)
	warnings = append(warnings, rErrs...)
	warnings = append(warnings, eErrs...)
	if len(warnings) > 0 {
		return domain.Decision{
			Reason:   domain.ReasonValidationFailed,
			Warnings: warnings,
			Overlap:  overlap,
		}
	}

	if r.OptOut() {
		return domain.Decision{
			Reason:   domain.ReasonOptedOut,
			Warnings: []string{"Recipient has opted out - DO NOT SEND"},
			Overlap:  overlap,
		}
	}

	if deadline := ev.Deadline(); deadline != "" {
		passed, parseErr := e.deadline.IsPassed(deadline, e.cfg.Now())
		switch {
		case parseErr != "":
			warnings = append(warnings, parseErr)
			if e.cfg.DeadlineFailClosed {
				return domain.Decision{
					Reason:   domain.ReasonDeadlinePassed,
					Warnings: append(warnings, "Unparseable deadline treated as passed - DO NOT SEND"),
					Overlap:  overlap,
				}
			}
		case passed:
			return domain.Decision{
				Reason:   domain.ReasonDeadlinePassed,
				Warnings: []string{"Application deadline has passed - DO NOT SEND"},
				Overlap:  overlap,
			}
		}
	}

	if len(overlap) < e.cfg.TopicMatchThreshold {
		return domain.Decision{
			Reason: domain.ReasonNoTopicMatch,
			Warnings: []string{fmt.Sprintf(
				"Insufficient topic overlap. Recipient: %v | Event: %v | Overlap: %v",
				r.Topics(), ev.Tags(), overlap,
			)},
			Overlap: overlap,
		}
	}

	return domain.Decision{
		Send:     true,
		Reason:   domain.ReasonApproved,
		Warnings: warnings,
		Overlap:  overlap,
	}
}

// ToneFor maps an engagement score to a writing voice. Total over all
// floats: out-of-range scores land in gentle or enthusiastic, the
// engine does not clamp.
func (e *Engine) ToneFor(score float64) domain.Tone {
	switch {
	case score >= e.cfg.EngagementHigh:
		return domain.ToneEnthusiastic
	case score >= e.cfg.EngagementLow:
		return domain.ToneProfessional
	default:
		return domain.ToneGentle
	}
}
