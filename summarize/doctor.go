package summarize

import (
	"strings"

	"github.com/harshzz13/medscribe/report"
)

// DoctorPlaceholder is returned when no block produces content.
const DoctorPlaceholder = "Unable to generate professional summary from the provided text."

// chiefComplaintLimit is the hard character cap for the chief complaint block.
const chiefComplaintLimit = 200

// vitalDisplay fixes the render order and labels of the vital signs block.
var vitalDisplay = []struct {
	key    string
	label  string
	suffix string
}{
	{report.VitalBloodPressure, "BP", ""},
	{report.VitalHeartRate, "HR", ""},
	{report.VitalTemperature, "Temp", "°F"},
	{report.VitalRespiratoryRate, "RR", ""},
}

// DoctorSummary composes the clinician-facing summary from normalized text:
// an ordered list of "**Label**: content" blocks joined by blank lines, then
// sentence-capped for the requested length. It never returns an empty string.
func DoctorSummary(text string, opts Options) string {
	info := report.ExtractInfo(text)
	sections := report.ExtractSections(text)

	var blocks []string
	add := func(label, content string) {
		if content != "" {
			blocks = append(blocks, "**"+label+"**: "+content)
		}
	}

	if cc, ok := sections["chief complaint"]; ok {
		add("Chief Complaint", truncateRunes(cc, chiefComplaintLimit)+"...")
	}
	add("Diagnosis", findDiagnosis(text))
	add("Treatment", findTreatment(text, info))
	if opts.IncludeMedications && len(info.Medications) > 0 {
		add("Medications", strings.Join(firstN(info.Medications, 5), ", "))
	}
	if opts.IncludeProcedures && len(info.Procedures) > 0 {
		add("Procedures", strings.Join(firstN(info.Procedures, 3), ", "))
	}
	if opts.IncludeRecommendations {
		add("Follow-up", findRecommendation(text))
	}
	if len(info.VitalSigns) > 0 {
		add("Vital Signs", formatVitals(info.VitalSigns))
	}

	if len(blocks) == 0 {
		return DoctorPlaceholder
	}
	return capSentences(strings.Join(blocks, "\n\n"), doctorCap(opts.Length))
}

// formatVitals renders extracted vitals in the fixed BP, HR, Temp, RR order.
func formatVitals(vitals map[string]string) string {
	var parts []string
	for _, d := range vitalDisplay {
		if v, ok := vitals[d.key]; ok {
			parts = append(parts, d.label+" "+v+d.suffix)
		}
	}
	return strings.Join(parts, ", ")
}

// truncateRunes hard-caps s at n runes, with no word-boundary awareness.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
