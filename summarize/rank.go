package summarize

import (
	"sort"
	"strings"
)

// importanceIndicators flag sentences carrying clinical weight.
var importanceIndicators = []string{
	"diagnosis", "diagnosed", "treatment", "medication", "procedure",
	"surgery", "admission", "discharge", "follow-up", "recommendation",
	"condition", "symptoms", "chief complaint", "assessment", "plan",
}

// KeySentences ranks sentences by how many importance indicators they contain
// and returns up to the clinician cap for the tier. Fragments shorter than 10
// characters are skipped; ties keep document order.
func KeySentences(text string, length Length) []string {
	type scored struct {
		sentence string
		score    int
	}

	var hits []scored
	for _, s := range splitSentences(text) {
		if len(s) < 10 {
			continue
		}
		lower := strings.ToLower(s)
		score := 0
		for _, ind := range importanceIndicators {
			if strings.Contains(lower, ind) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{s, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	max := doctorCap(length)
	if len(hits) > max {
		hits = hits[:max]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.sentence
	}
	return out
}
