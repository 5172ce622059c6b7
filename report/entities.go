package report

import (
	"regexp"
	"strings"
	"unicode"
)

// Vital sign keys used in Info.VitalSigns.
const (
	VitalBloodPressure   = "blood_pressure"
	VitalHeartRate       = "heart_rate"
	VitalTemperature     = "temperature"
	VitalRespiratoryRate = "respiratory_rate"
)

// Info holds the entities extracted from a report. Medications and procedures
// are deduplicated in insertion order; vital sign values are stored verbatim
// as matched.
type Info struct {
	Medications     []string          `json:"medications"`
	Procedures      []string          `json:"procedures"`
	VitalSigns      map[string]string `json:"vital_signs"`
	Diagnoses       []string          `json:"diagnoses"`       // reserved
	Recommendations []string          `json:"recommendations"` // reserved
}

// medicationRes match "<word> <number> mg|mcg" and "<word> tablet|capsule".
var medicationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\w+)\s+\d+\s*mg\b`),
	regexp.MustCompile(`(?i)\b(\w+)\s+\d+\s*mcg\b`),
	regexp.MustCompile(`(?i)\b(\w+)\s+tablet\b`),
	regexp.MustCompile(`(?i)\b(\w+)\s+capsule\b`),
}

// procedureKeywords is the fixed procedure vocabulary; each keyword is
// recorded at most once regardless of occurrence count.
var procedureKeywords = []string{
	"catheterization", "angioplasty", "surgery", "biopsy", "endoscopy",
	"bronchoscopy", "colonoscopy", "echocardiogram", "CT scan", "MRI",
	"X-ray", "ultrasound", "blood transfusion", "dialysis",
}

// vitalRes are matched against the lowered text, first occurrence only.
var vitalRes = []struct {
	key string
	re  *regexp.Regexp
}{
	{VitalBloodPressure, regexp.MustCompile(`bp:?\s*(\d+/\d+)`)},
	{VitalHeartRate, regexp.MustCompile(`hr:?\s*(\d+)`)},
	{VitalTemperature, regexp.MustCompile(`temp:?\s*(\d+\.?\d*)`)},
	{VitalRespiratoryRate, regexp.MustCompile(`rr:?\s*(\d+)`)},
}

// ExtractInfo pulls medications, procedures and vital signs out of text via
// keyword and pattern matching.
func ExtractInfo(text string) Info {
	info := Info{VitalSigns: make(map[string]string)}
	lower := strings.ToLower(text)

	seenMeds := make(map[string]bool)
	for _, re := range medicationRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			med := titleCase(m[1])
			if !seenMeds[med] {
				seenMeds[med] = true
				info.Medications = append(info.Medications, med)
			}
		}
	}

	seenProcs := make(map[string]bool)
	for _, kw := range procedureKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			proc := titleCase(kw)
			if !seenProcs[proc] {
				seenProcs[proc] = true
				info.Procedures = append(info.Procedures, proc)
			}
		}
	}

	for _, v := range vitalRes {
		if m := v.re.FindStringSubmatch(lower); m != nil {
			info.VitalSigns[v.key] = m[1]
		}
	}
	return info
}

// titleCase uppercases the first letter of every letter run and lowers the
// rest ("CT scan" → "Ct Scan", "aSpIrIn" → "Aspirin").
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}
