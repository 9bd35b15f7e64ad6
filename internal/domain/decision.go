package domain

// Reason classifies why a (recipient, event) pair was approved or
// blocked. The set is closed; downstream reporting keys on it.
type Reason string

const (
	ReasonApproved         Reason = "approved"
	ReasonValidationFailed Reason = "validation_failed"
	ReasonOptedOut         Reason = "opted_out"
	ReasonDeadlinePassed   Reason = "deadline_passed"
	ReasonNoTopicMatch     Reason = "no_topic_match"
)

// Decision is the eligibility verdict for one (recipient, event) pair.
// It is computed fresh per pair and never persisted on its own.
type Decision struct {
	Send     bool
	Reason   Reason
	Warnings []string
	Overlap  []string
}

// Tone labels the writing voice chosen from a recipient's engagement
// score.
type Tone string

const (
	ToneEnthusiastic Tone = "enthusiastic"
	ToneProfessional Tone = "professional"
	ToneGentle       Tone = "gentle"
)
