package report

import "strings"

// medicalAbbreviations maps common report shorthand to its expansion.
// Lookup is case-insensitive on the token with trailing punctuation stripped.
var medicalAbbreviations = map[string]string{
	"pt":   "patient",
	"pts":  "patients",
	"hx":   "history",
	"dx":   "diagnosis",
	"tx":   "treatment",
	"rx":   "prescription",
	"sx":   "symptoms",
	"f/u":  "follow-up",
	"w/":   "with",
	"w/o":  "without",
	"c/o":  "complains of",
	"r/o":  "rule out",
	"sob":  "shortness of breath",
	"cp":   "chest pain",
	"bp":   "blood pressure",
	"hr":   "heart rate",
	"rr":   "respiratory rate",
	"temp": "temperature",
	"wbc":  "white blood cell count",
	"rbc":  "red blood cell count",
	"hgb":  "hemoglobin",
	"hct":  "hematocrit",
	"bun":  "blood urea nitrogen",
	"cr":   "creatinine",
	"na":   "sodium",
	"k":    "potassium",
	"cl":   "chloride",
	"co2":  "carbon dioxide",
	"mg":   "magnesium",
	"po":   "by mouth",
	"iv":   "intravenous",
	"im":   "intramuscular",
	"bid":  "twice daily",
	"tid":  "three times daily",
	"qid":  "four times daily",
	"qd":   "once daily",
	"prn":  "as needed",
	"hs":   "at bedtime",
	"ac":   "before meals",
	"pc":   "after meals",
}

// punctChars is the ASCII punctuation set used when stemming tokens.
const punctChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// expandAbbreviations replaces each whitespace-delimited token whose
// punctuation-stripped stem is a known abbreviation, re-appending the
// original trailing punctuation ("BP:" → "blood pressure:").
func expandAbbreviations(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		stem := strings.TrimRight(word, punctChars)
		if exp, ok := medicalAbbreviations[strings.ToLower(stem)]; ok {
			words[i] = exp + word[len(stem):]
		}
	}
	return strings.Join(words, " ")
}
