// Package summarize composes audience-specific summaries from normalized
// medical-report text: a structured clinician summary and a plain-language
// patient narrative. Composition is rule-based: ordered pattern lookups over
// the text plus the section and entity output of the report package.
//
// Every function is a pure function of its input and the immutable
// package-level tables, safe for concurrent use.
package summarize

import (
	"regexp"
	"strings"
)

// Length selects the verbosity bucket controlling the sentence-count cap.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Options configures a single summary run.
type Options struct {
	Length                 Length `json:"length"`
	IncludeMedications     bool   `json:"include_medications"`
	IncludeProcedures      bool   `json:"include_procedures"`
	IncludeRecommendations bool   `json:"include_recommendations"`
}

// DefaultOptions returns medium length with all sections included.
func DefaultOptions() Options {
	return Options{
		Length:                 LengthMedium,
		IncludeMedications:     true,
		IncludeProcedures:      true,
		IncludeRecommendations: true,
	}
}

var doctorSentenceCaps = map[Length]int{
	LengthShort:  3,
	LengthMedium: 5,
	LengthLong:   8,
}

var patientSentenceCaps = map[Length]int{
	LengthShort:  2,
	LengthMedium: 4,
	LengthLong:   6,
}

// doctorCap returns the clinician sentence cap for l, defaulting to medium.
func doctorCap(l Length) int {
	if c, ok := doctorSentenceCaps[l]; ok {
		return c
	}
	return doctorSentenceCaps[LengthMedium]
}

// patientCap returns the patient sentence cap for l, defaulting to medium.
func patientCap(l Length) int {
	if c, ok := patientSentenceCaps[l]; ok {
		return c
	}
	return patientSentenceCaps[LengthMedium]
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// splitSentences splits on terminal punctuation runs, trimming and dropping
// empty fragments.
func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// capSentences bounds text to at most max sentences. Text within the cap is
// returned unchanged; truncated text is rejoined with ". " and given a
// trailing period.
func capSentences(text string, max int) string {
	sentences := splitSentences(text)
	if len(sentences) > max {
		return strings.Join(sentences[:max], ". ") + "."
	}
	return text
}

// firstN returns the first n entries of list, or all of them.
func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
