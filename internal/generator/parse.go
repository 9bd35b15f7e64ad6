package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fundingforward/outreach/internal/domain"
)

// emailPayload is the JSON document the backend is instructed to
// return: reasoning metadata plus the email itself.
type emailPayload struct {
	InternalReasoning map[string]any `json:"internal_reasoning,omitempty"`
	Email             *domain.Email  `json:"email"`
	Verification      map[string]any `json:"verification,omitempty"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// stripCodeFence removes a wrapping markdown fence. Some models emit
// ```json ... ``` even when asked for a bare object.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// parsePayload validates raw completion text into an emailPayload. An
// empty subject or body counts as a parse failure: a blank email is as
// unusable as a malformed one.
func parsePayload(raw string) (*emailPayload, error) {
	var p emailPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &p); err != nil {
		return nil, fmt.Errorf("completion is not valid JSON: %w", err)
	}
	if p.Email == nil {
		return nil, fmt.Errorf("completion has no email object")
	}
	if strings.TrimSpace(p.Email.Subject) == "" || strings.TrimSpace(p.Email.Body) == "" {
		return nil, fmt.Errorf("completion email has empty subject or body")
	}
	return &p, nil
}
