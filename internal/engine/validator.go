package engine

import (
	"fmt"

	"github.com/fundingforward/outreach/internal/domain"
)

// Required-field schemas for the two input record kinds. A record that
// fails any of these is blocked with validation_failed before any other
// policy check runs.
var (
	requiredRecipientFields = []string{
		"recipient_id", "name", "email", "organization",
		"topics", "engagement_score", "opt_out",
	}
	requiredEventFields = []string{
		"event_id", "title", "start_date", "tags", "organizer", "metadata",
	}
	requiredMetadataFields = []string{"amount_range", "application_deadline"}
)

// ValidateRecipient checks a raw recipient record against the required
// schema. Problems come back as strings, never as errors or panics.
func ValidateRecipient(r domain.Recipient) []string {
	var errs []string
	for _, field := range requiredRecipientFields {
		if _, ok := r[field]; !ok {
			errs = append(errs, fmt.Sprintf("Missing recipient field: %s", field))
		}
	}
	if v, ok := r["topics"]; ok && !isList(v) {
		errs = append(errs, "recipient.topics must be a list")
	}
	return errs
}

// ValidateEvent checks a raw event record against the required schema,
// including the nested metadata sub-fields.
func ValidateEvent(e domain.Event) []string {
	var errs []string
	for _, field := range requiredEventFields {
		if _, ok := e[field]; !ok {
			errs = append(errs, fmt.Sprintf("Missing event field: %s", field))
		}
	}
	if v, ok := e["metadata"]; ok {
		meta, isMap := v.(map[string]any)
		if !isMap {
			errs = append(errs, "event.metadata must be an object")
		} else {
			for _, field := range requiredMetadataFields {
				if _, ok := meta[field]; !ok {
					errs = append(errs, fmt.Sprintf("Missing event.metadata field: %s", field))
				}
			}
		}
	}
	if v, ok := e["tags"]; ok && !isList(v) {
		errs = append(errs, "event.tags must be a list")
	}
	return errs
}

// isList accepts both decoded-JSON arrays and native string slices so
// records built in tests behave like records loaded from files.
func isList(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	}
	return false
}
