// Package stage holds the static configuration for the 7-touch
// outreach sequence. Stage identifiers are campaign day labels, not
// sequential indexes: days 2 and 4 are deliberately silent, and day 7
// splits into a morning (7a) and a final-hour (7b) touch.
package stage

// Config is the static bundle behind one outreach touchpoint. These are
// lookup data; nothing here is derived at runtime.
type Config struct {
	ID             string
	Label          string
	Purpose        string
	Principle      string
	SubjectFormula string
	Structure      []string
}

// All returns the stage identifiers in campaign order.
func All() []string {
	return []string{"0", "1", "3", "5", "6", "7a", "7b"}
}

// Known reports whether id names a configured stage.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// Lookup returns the bundle for id. Unknown identifiers get a generic
// bundle so an unrecognized stage still renders a usable email.
func Lookup(id string) Config {
	if c, ok := registry[id]; ok {
		return c
	}
	c := generic
	c.ID = id
	return c
}

var registry = map[string]Config{
	"0": {
		ID:             "0",
		Label:          "Registration Confirmation",
		Purpose:        "Confirm the registration and set expectations for the week ahead",
		Principle:      "Deliver immediate value and open a feedback loop",
		SubjectFormula: "You're in! Here's what to expect - {event title}",
		Structure: []string{
			"Warm confirmation of registration",
			"What to expect from the sequence",
			"Key facts: grant amounts and application deadline",
			"Calendar reminder ask",
		},
	},
	"1": {
		ID:             "1",
		Label:          "Indoctrination",
		Purpose:        "Name the big problem that keeps organizations from winning grants",
		Principle:      "Lead with the epiphany, not the pitch",
		SubjectFormula: "The #1 mistake that kills 97% of {topic} applications",
		Structure: []string{
			"Pattern observed across similar organizations",
			"The core mistake and why merit alone fails",
			"How the event addresses it directly",
			"Soft forward-tease to the next touch",
		},
	},
	"3": {
		ID:             "3",
		Label:          "Social Proof",
		Purpose:        "Show that organizations like the recipient's win real money",
		Principle:      "Proof beats promises",
		SubjectFormula: "Proof: Real organizations getting real grant money - {event title}",
		Structure: []string{
			"Concrete grant outcomes in the recipient's space",
			"Why those applicants succeeded",
			"Tie back to the event and the deadline",
		},
	},
	"5": {
		ID:             "5",
		Label:          "Objection Handling",
		Purpose:        "Defuse the two standard objections: no time, not competitive",
		Principle:      "Acknowledge skepticism honestly before answering it",
		SubjectFormula: "I get it... you're skeptical (but read this about {event title})",
		Structure: []string{
			"Voice the objection in the recipient's own words",
			"Answer each objection with a concrete reality",
			"Reframe the cost of not attending",
		},
	},
	"6": {
		ID:             "6",
		Label:          "Final Push",
		Purpose:        "Build urgency the day before the event",
		Principle:      "Preparation checklist converts intent into attendance",
		SubjectFormula: "Tomorrow: Your {topic} funding breakthrough",
		Structure: []string{
			"Tomorrow-is-the-day announcement",
			"Short preparation checklist",
			"Stakes: grant amounts and deadline",
			"P.S. teasing the event-day reminder",
		},
	},
	"7a": {
		ID:             "7a",
		Label:          "Morning Reminder",
		Purpose:        "Event-day morning reminder with logistics",
		Principle:      "Remove every friction between intent and showing up",
		SubjectFormula: "Going LIVE in 6 hours - {event title}",
		Structure: []string{
			"Hours-to-go countdown",
			"Have-ready checklist",
			"Single clear call to action",
		},
	},
	"7b": {
		ID:             "7b",
		Label:          "Final Warning",
		Purpose:        "Last-hour push to join the live event",
		Principle:      "Brevity: one fact, one deadline, one action",
		SubjectFormula: "Starting in 60 minutes (join now)",
		Structure: []string{
			"Sixty-minute countdown",
			"One-line value restatement",
			"Join-now call to action",
		},
	},
}

var generic = Config{
	Label:          "Custom Outreach",
	Purpose:        "Introduce a relevant funding opportunity",
	Principle:      "Personalized, factual outreach",
	SubjectFormula: "{event title} - Opportunity for {organization}",
	Structure: []string{
		"Opportunity introduction",
		"Key facts: amounts and deadline",
		"Relevance to the recipient's work",
	},
}
