package summarize

import "regexp"

// patientTranslations pairs clinical terms with their plain-language
// equivalents. Substitution is whole-word and case-insensitive, applied in
// declaration order with no longest-match arbitration, so overlapping terms
// resolve by position in this table.
var patientTranslations = []struct {
	term string
	lay  string
}{
	{"myocardial infarction", "heart attack"},
	{"hypertension", "high blood pressure"},
	{"diabetes mellitus", "diabetes"},
	{"cerebrovascular accident", "stroke"},
	{"pneumonia", "lung infection"},
	{"gastroenteritis", "stomach bug"},
	{"urinary tract infection", "bladder infection"},
	{"angina", "chest pain"},
	{"arrhythmia", "irregular heartbeat"},
	{"tachycardia", "fast heart rate"},
	{"bradycardia", "slow heart rate"},
	{"dyspnea", "trouble breathing"},
	{"syncope", "fainting"},
	{"edema", "swelling"},
	{"hemorrhage", "bleeding"},
	{"fracture", "broken bone"},
	{"laceration", "cut"},
	{"contusion", "bruise"},
	{"antibiotic", "infection medicine"},
	{"analgesic", "pain medicine"},
	{"catheterization", "procedure to open blocked blood vessels"},
	{"angioplasty", "procedure to open blocked blood vessels"},
	{"stent", "small tube to keep blood vessels open"},
	{"biopsy", "tissue sample test"},
	{"CT scan", "detailed X-ray"},
	{"MRI", "detailed body scan"},
	{"echocardiogram", "heart ultrasound"},
	{"endoscopy", "camera examination"},
	{"prognosis", "outlook"},
	{"acute", "sudden"},
	{"chronic", "long-term"},
}

var translationRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patientTranslations))
	for i, p := range patientTranslations {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.term) + `\b`)
	}
	return res
}()

// TranslateForPatient replaces clinical terms with lay equivalents, one table
// entry at a time in declaration order.
func TranslateForPatient(text string) string {
	for i, p := range patientTranslations {
		text = translationRes[i].ReplaceAllString(text, p.lay)
	}
	return text
}
