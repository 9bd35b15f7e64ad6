package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fundingforward/outreach/internal/domain"
	"github.com/fundingforward/outreach/internal/stage"
)

const rule = "================================================================================"

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// sanitizeFileName converts free text into a safe file name fragment,
// capped at 50 characters.
func sanitizeFileName(text string) string {
	s := unsafeFileChars.ReplaceAllString(text, "_")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// ExportText writes the human-readable artifacts for a full run: one
// .txt file per generated email under emails_by_day/day_<stage>/, a
// master index, and a summary report. Reviewers read these; the JSON
// documents remain the canonical output.
func (s *Store) ExportText(outputs []domain.StageOutput, names map[string]pairNames) error {
	base := filepath.Join(s.outputDir, "emails_by_day")
	for _, out := range outputs {
		dir := filepath.Join(base, "day_"+out.Stage)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export dir: %w", err)
		}
		for _, rec := range out.Emails {
			if rec.Status != domain.StatusGenerated || rec.Email == nil {
				continue
			}
			n := names[rec.RecipientID+"|"+rec.EventID]
			path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt",
				sanitizeFileName(n.Recipient), sanitizeFileName(n.Event)))
			if err := os.WriteFile(path, []byte(emailText(rec, n)), 0o644); err != nil {
				return fmt.Errorf("writing email export: %w", err)
			}
		}
	}

	if err := s.writeIndex(outputs, names); err != nil {
		return err
	}
	return s.writeSummary(outputs)
}

// pairNames carries the display names for one (recipient, event) pair,
// which the EmailRecord itself only holds as identifiers.
type pairNames struct {
	Recipient string
	Event     string
}

// PairNames indexes display names by "recipientID|eventID" for the
// text exports.
func PairNames(recipients []domain.Recipient, events []domain.Event) map[string]pairNames {
	names := make(map[string]pairNames, len(recipients)*len(events))
	for _, r := range recipients {
		for _, ev := range events {
			names[r.ID()+"|"+ev.ID()] = pairNames{Recipient: r.Name(), Event: ev.Title()}
		}
	}
	return names
}

func emailText(rec domain.EmailRecord, n pairNames) string {
	var b strings.Builder
	label := stage.Lookup(rec.Stage).Label
	fmt.Fprintf(&b, "%s\nEMAIL: Day %s - %s\n%s\n\n", rule, rec.Stage, label, rule)
	fmt.Fprintf(&b, "RECIPIENT: %s\nEVENT: %s\n", n.Recipient, n.Event)
	fmt.Fprintf(&b, "RECIPIENT_ID: %s\nEVENT_ID: %s\n", rec.RecipientID, rec.EventID)
	fmt.Fprintf(&b, "GENERATED: %s\n\n", rec.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\nSUBJECT\n%s\n%s\n\n", rule, rule, rec.Email.Subject)
	fmt.Fprintf(&b, "%s\nBODY\n%s\n%s\n\n%s\n", rule, rule, rec.Email.Body, rule)
	return b.String()
}

func (s *Store) writeIndex(outputs []domain.StageOutput, names map[string]pairNames) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nMASTER EMAIL INDEX - 7-Day Outreach Sequence\n%s\n\n", rule, rule)

	for _, out := range outputs {
		fmt.Fprintf(&b, "Day %s - %s\n", out.Stage, stage.Lookup(out.Stage).Label)
		i := 0
		for _, rec := range out.Emails {
			if rec.Status != domain.StatusGenerated || rec.Email == nil {
				continue
			}
			i++
			n := names[rec.RecipientID+"|"+rec.EventID]
			subject := rec.Email.Subject
			if len(subject) > 60 {
				subject = subject[:60] + "..."
			}
			fmt.Fprintf(&b, "  %d. %s -> %s\n     Subject: %s\n", i, n.Recipient, n.Event, subject)
		}
		if i == 0 {
			b.WriteString("  (no emails generated)\n")
		}
		b.WriteString("\n")
	}

	path := filepath.Join(s.outputDir, "MASTER_INDEX.txt")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func (s *Store) writeSummary(outputs []domain.StageOutput) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nEMAIL GENERATION SUMMARY REPORT\n%s\n\n", rule, rule)

	total := domain.Statistics{ByReason: map[domain.Reason]int{}}
	for _, out := range outputs {
		total.Total += out.Statistics.Total
		total.Generated += out.Statistics.Generated
		total.Blocked += out.Statistics.Blocked
		for reason, n := range out.Statistics.ByReason {
			total.ByReason[reason] += n
		}
	}
	fmt.Fprintf(&b, "Total pairs: %d\nGenerated: %d\nBlocked: %d\n\nBREAKDOWN BY DAY\n",
		total.Total, total.Generated, total.Blocked)

	for _, out := range outputs {
		fmt.Fprintf(&b, "  Day %-3s %-26s generated=%d blocked=%d\n",
			out.Stage, stage.Lookup(out.Stage).Label, out.Statistics.Generated, out.Statistics.Blocked)
	}

	if len(total.ByReason) > 0 {
		b.WriteString("\nBLOCK REASONS\n")
		for _, reason := range []domain.Reason{
			domain.ReasonValidationFailed, domain.ReasonOptedOut,
			domain.ReasonDeadlinePassed, domain.ReasonNoTopicMatch,
		} {
			if n := total.ByReason[reason]; n > 0 {
				fmt.Fprintf(&b, "  %-20s %d\n", reason, n)
			}
		}
	}

	path := filepath.Join(s.outputDir, "SUMMARY_REPORT.txt")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
