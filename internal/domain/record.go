package domain

// Recipient is a raw recipient record exactly as loaded from the
// recipients file. It stays a plain JSON object rather than a struct so
// validation can tell a missing field apart from a zero value, and so a
// malformed record (e.g. topics as a string) survives loading and can
// be reported instead of silently dropped.
type Recipient map[string]any

// ID returns the recipient identifier.
func (r Recipient) ID() string { return stringField(r, "recipient_id") }

// Name returns the recipient display name.
func (r Recipient) Name() string { return stringField(r, "name") }

// Email returns the recipient email address.
func (r Recipient) Email() string { return stringField(r, "email") }

// Organization returns the recipient organization name.
func (r Recipient) Organization() string { return stringField(r, "organization") }

// Topics returns the recipient interest tags. Non-list or non-string
// values yield an empty slice; the validator reports them separately.
func (r Recipient) Topics() []string { return stringSlice(r, "topics") }

// EngagementScore returns the recipient engagement score in [0, 1].
func (r Recipient) EngagementScore() float64 { return floatField(r, "engagement_score") }

// OptOut reports whether the recipient has opted out of outreach.
func (r Recipient) OptOut() bool {
	v, _ := r["opt_out"].(bool)
	return v
}

// Event is a raw event record exactly as loaded from the events file.
type Event map[string]any

// ID returns the event identifier.
func (e Event) ID() string { return stringField(e, "event_id") }

// Title returns the event title.
func (e Event) Title() string { return stringField(e, "title") }

// Organizer returns the event organizer name.
func (e Event) Organizer() string { return stringField(e, "organizer") }

// Tags returns the event tags.
func (e Event) Tags() []string { return stringSlice(e, "tags") }

// Metadata returns the event metadata object, or nil when absent or
// malformed.
func (e Event) Metadata() map[string]any {
	m, _ := e["metadata"].(map[string]any)
	return m
}

// AmountRange returns the grant amount range from the event metadata.
func (e Event) AmountRange() string { return stringField(e.Metadata(), "amount_range") }

// Deadline returns the application deadline string from the event
// metadata, empty when not present.
func (e Event) Deadline() string { return stringField(e.Metadata(), "application_deadline") }

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func floatField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func stringSlice(m map[string]any, key string) []string {
	switch raw := m[key].(type) {
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
