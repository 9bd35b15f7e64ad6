package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fundingforward/outreach/internal/domain"
	"github.com/fundingforward/outreach/internal/stage"
)

const systemPrompt = `You are an expert email copywriter for a grants outreach program.
You write one email per request, following the campaign playbook for the given day.

Hard rules:
- Use ONLY facts present in the recipient and event JSON provided. Never invent names, amounts, dates, or outcomes.
- Keep the body under 250 words, plain text, no HTML.
- Sign off as "Priya Singh, Grants Coordinator, Funding Forward".
- Respond with a SINGLE JSON object and nothing else. No markdown, no code fences.

Response schema:
{
  "internal_reasoning": {"email_type": "...", "match_decision": "send", "principle": "..."},
  "email": {"subject": "...", "body": "..."},
  "verification": {"all_data_from_json": true},
  "warnings": []
}`

const userPromptTemplate = `Write the Day %s email ("%s") for the recipient and event below.

Purpose: %s
Guiding principle: %s
Subject formula: %s
Structure:
%s

Recipient:
%s

Event:
%s`

// buildUserPrompt templates the stage bundle plus the serialized
// records into the user instruction.
func buildUserPrompt(sc stage.Config, r domain.Recipient, ev domain.Event) string {
	recipientJSON, _ := json.MarshalIndent(r, "", "  ")
	eventJSON, _ := json.MarshalIndent(ev, "", "  ")

	structure := make([]string, len(sc.Structure))
	for i, item := range sc.Structure {
		structure[i] = "- " + item
	}

	return fmt.Sprintf(userPromptTemplate,
		sc.ID, sc.Label, sc.Purpose, sc.Principle, sc.SubjectFormula,
		strings.Join(structure, "\n"), recipientJSON, eventJSON)
}
