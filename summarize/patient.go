package summarize

import (
	"strings"

	"github.com/harshzz13/medscribe/report"
)

// PatientPlaceholder is returned when no narrative can be assembled.
const PatientPlaceholder = "We are unable to create a simple summary of your medical report at this time. Please ask your doctor to explain your results."

const (
	defaultReason    = "You came to the hospital for medical care."
	defaultNextSteps = "Please follow up with your doctor as recommended."
)

// PatientSummary composes the patient-facing narrative from normalized text:
// up to five clauses joined by single spaces, lay-term translation, sentence
// cap, and a forced trailing period. Whitespace-only input yields the fixed
// placeholder.
func PatientSummary(text string, opts Options) string {
	if strings.TrimSpace(text) == "" {
		return PatientPlaceholder
	}

	info := report.ExtractInfo(text)
	var parts []string

	if reason := firstMatch(reasonRes, text); reason != "" {
		parts = append(parts, "You came to the hospital because of "+strings.ToLower(reason)+".")
	} else {
		parts = append(parts, defaultReason)
	}

	if d := findDiagnosis(text); d != "" {
		parts = append(parts, "Tests and examinations showed that you have "+strings.ToLower(d)+".")
	}

	if t := findTreatment(text, info); t != "" {
		parts = append(parts, "Doctors provided treatment including "+strings.ToLower(t)+".")
	}

	if opts.IncludeMedications && len(info.Medications) > 0 {
		parts = append(parts, explainMedications(info.Medications))
	}

	if opts.IncludeRecommendations {
		if rec := findRecommendation(text); rec != "" {
			parts = append(parts, "Please "+strings.ToLower(rec))
		} else {
			parts = append(parts, defaultNextSteps)
		}
	}

	summary := TranslateForPatient(strings.Join(parts, " "))
	summary = capSentences(summary, patientCap(opts.Length))
	if summary == "" {
		return PatientPlaceholder
	}
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

// explainMedications uses singular phrasing for one medication, plural for a
// list of up to three.
func explainMedications(meds []string) string {
	if len(meds) == 1 {
		return "You have been given medicine called " + meds[0] + " to help with your condition."
	}
	return "You have been given medicines including " + strings.Join(firstN(meds, 3), ", ") + " to help with your condition."
}
