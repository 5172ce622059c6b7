package report

import (
	"regexp"
	"strings"
)

// sectionHeaders is the fixed vocabulary of medical report headers, in the
// order sections are extracted.
var sectionHeaders = []string{
	"chief complaint",
	"history of present illness",
	"past medical history",
	"medications",
	"allergies",
	"social history",
	"family history",
	"review of systems",
	"physical examination",
	"assessment",
	"plan",
	"discharge summary",
	"impression",
	"recommendations",
	"procedures",
	"laboratory results",
	"imaging",
	"vital signs",
}

// sectionStartRes matches "header", optional colon, and the whitespace run
// that follows. Searched on lowered text, so no case flag is needed.
var sectionStartRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(sectionHeaders))
	for _, h := range sectionHeaders {
		res[h] = regexp.MustCompile(`\b` + regexp.QuoteMeta(h) + `:?\s*\n?`)
	}
	return res
}()

// sectionBoundaryRe matches a newline-led occurrence of any header in the
// vocabulary. Section content runs until the earliest such boundary.
var sectionBoundaryRe = func() *regexp.Regexp {
	alts := make([]string, len(sectionHeaders))
	for i, h := range sectionHeaders {
		alts[i] = `\b` + regexp.QuoteMeta(h) + `\b`
	}
	return regexp.MustCompile(`\n\s*(?:` + strings.Join(alts, "|") + `)`)
}()

// ExtractSections segments text into named sections keyed by header. For each
// header the leftmost occurrence is found and everything up to the next
// newline-led header (or end of text) is captured; the search runs over the
// lowered text, so captured content is lower-cased. Only non-empty captures
// are returned.
//
// An inline repetition of a header (one not preceded by a newline) is not a
// boundary, so a section's content can contain a verbatim recurrence of its
// own header text.
func ExtractSections(text string) map[string]string {
	sections := make(map[string]string)
	lower := strings.ToLower(text)

	for _, header := range sectionHeaders {
		loc := sectionStartRes[header].FindStringIndex(lower)
		if loc == nil {
			continue
		}
		start := loc[1]
		end := len(lower)
		if b := sectionBoundaryRe.FindStringIndex(lower[start:]); b != nil {
			end = start + b[0]
		}
		if content := strings.TrimSpace(lower[start:end]); content != "" {
			sections[header] = content
		}
	}
	return sections
}
