// Package report extracts structured information from free-text medical
// reports: text normalization, section segmentation, and entity extraction.
//
// All lookup tables (abbreviations, section headers, procedure keywords) are
// package-level values built once at init and never mutated, so every function
// is pure and safe for concurrent use on independent inputs.
package report

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	charsetRe    = regexp.MustCompile(`[^\w\s.,;:!?\-()/]`)
	punctSpaceRe = regexp.MustCompile(`\s*([,.;:!?])\s*`)
	punctRunRe   = regexp.MustCompile(`([,.;:!?]){2,}`)
)

// phiPatterns are the fixed redaction passes, applied in order on the output
// of the previous pass. Regexes are RE2, so matching is linear-time.
var phiPatterns = []struct {
	re    *regexp.Regexp
	token string
}{
	{regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "[SSN]"},
	{regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`), "[PHONE]"},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), "[DATE]"},
	{regexp.MustCompile(`(?i)\bMRN:?\s*\d+\b`), "[MRN]"},
}

// Clean normalizes raw medical-report text: whitespace collapse, character
// whitelist, abbreviation expansion, punctuation cleanup, and PHI redaction,
// in that order. It is total: empty input yields empty output, never an error.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = charsetRe.ReplaceAllString(text, "")
	text = expandAbbreviations(text)
	text = cleanPunctuation(text)
	return redactPHI(text)
}

// cleanPunctuation enforces a single space after sentence punctuation,
// collapses punctuation runs, and makes every period-delimited sentence end
// with terminal punctuation.
func cleanPunctuation(text string) string {
	text = punctSpaceRe.ReplaceAllString(text, "${1} ")
	text = punctRunRe.ReplaceAllString(text, "${1}")

	var sentences []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.ContainsAny(s[len(s)-1:], ".!?") {
			s += "."
		}
		sentences = append(sentences, s)
	}
	return strings.Join(sentences, " ")
}

// redactPHI replaces SSN, phone, slash-date and MRN shaped substrings with
// their fixed placeholder tokens. These are heuristics, not a scrubbing
// guarantee.
func redactPHI(text string) string {
	for _, p := range phiPatterns {
		text = p.re.ReplaceAllString(text, p.token)
	}
	return text
}
