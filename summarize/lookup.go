package summarize

import (
	"regexp"
	"strings"

	"github.com/harshzz13/medscribe/report"
)

// Ordered matchers, tried until the first success. Captures run to end of
// line, never across it.
var (
	diagnosisRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)diagnosis:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)diagnosed with\s+([^.\n]+)`),
		regexp.MustCompile(`(?i)impression:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)assessment:?\s*([^.\n]+)`),
	}

	treatmentRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)treatment:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)treated with\s+([^.\n]+)`),
		regexp.MustCompile(`(?i)plan:?\s*([^.\n]+)`),
	}

	recommendationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)follow[-\s]?up:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)recommendation:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)discharge.*?instructions:?\s*([^.\n]+)`),
	}

	reasonRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)chief complaint:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)presenting complaint:?\s*([^.\n]+)`),
		regexp.MustCompile(`(?i)came.*?because of\s+([^.\n]+)`),
	}
)

// firstMatch returns the trimmed first capture of the first matching pattern,
// or "" when none match.
func firstMatch(res []*regexp.Regexp, text string) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// findDiagnosis extracts diagnosis information from text.
func findDiagnosis(text string) string {
	return firstMatch(diagnosisRes, text)
}

// findTreatment extracts treatment information. When no explicit treatment
// statement matches, it falls back to the first two extracted procedures.
func findTreatment(text string, info report.Info) string {
	if t := firstMatch(treatmentRes, text); t != "" {
		return t
	}
	if len(info.Procedures) > 0 {
		return strings.Join(firstN(info.Procedures, 2), ", ")
	}
	return ""
}

// findRecommendation extracts follow-up recommendations from text.
func findRecommendation(text string) string {
	return firstMatch(recommendationRes, text)
}
