package engine

import (
	"sort"
	"strings"
)

// Overlap returns the recipient topics whose normalized form also
// appears among the event tags. Matching is case-insensitive and
// whitespace-trimmed. The output keeps the recipient's original casing
// and is sorted by normalized value, so repeated calls on identical
// input produce identical slices.
func Overlap(recipientTopics, eventTags []string) []string {
	tagSet := make(map[string]struct{}, len(eventTags))
	for _, t := range eventTags {
		tagSet[normalizeTopic(t)] = struct{}{}
	}

	out := make([]string, 0, len(recipientTopics))
	for _, t := range recipientTopics {
		if _, ok := tagSet[normalizeTopic(t)]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return normalizeTopic(out[i]) < normalizeTopic(out[j])
	})
	return out
}

func normalizeTopic(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
