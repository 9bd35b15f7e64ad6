package domain

import "time"

// Status of a single EmailRecord.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusBlocked   Status = "blocked"
)

// Email is the generated subject/body content for one send.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailRecord is the terminal output for one (recipient, event, stage)
// triple. Blocked pairs carry no email but keep the overlap diagnostics
// and warnings for audit.
type EmailRecord struct {
	RecipientID   string    `json:"recipient_id"`
	EventID       string    `json:"event_id"`
	Stage         string    `json:"stage"`
	Status        Status    `json:"status"`
	Reason        Reason    `json:"reason"`
	Email         *Email    `json:"email,omitempty"`
	Tone          Tone      `json:"tone,omitempty"`
	TopicOverlap  []string  `json:"topic_overlap"`
	FallbackUsed  bool      `json:"fallback_used,omitempty"`
	FallbackCause string    `json:"fallback_cause,omitempty"`
	Warnings      []string  `json:"warnings,omitempty"`
	GeneratedAt   time.Time `json:"generated_at,omitzero"`
}

// Statistics summarizes the outcome counts of one stage run.
type Statistics struct {
	Total     int            `json:"total"`
	Generated int            `json:"generated"`
	Blocked   int            `json:"blocked"`
	ByReason  map[Reason]int `json:"by_reason,omitempty"`
}

// StageOutput is the per-stage output document, written wholesale on
// each run.
type StageOutput struct {
	Stage       string        `json:"stage"`
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Statistics  Statistics    `json:"statistics"`
	Emails      []EmailRecord `json:"emails"`
}
