package summarize

import "testing"

func TestTranslateForPatient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"history of myocardial infarction", "history of heart attack"},
		{"Myocardial Infarction confirmed", "heart attack confirmed"},
		{"chronic hypertension and edema", "long-term high blood pressure and swelling"},
		{"CT scan and MRI ordered", "detailed X-ray and detailed body scan ordered"},
		{"no clinical terms here", "no clinical terms here"},
	}
	for _, tt := range tests {
		if got := TranslateForPatient(tt.in); got != tt.want {
			t.Errorf("TranslateForPatient(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateForPatientWholeWord(t *testing.T) {
	// Substring occurrences inside longer words are left alone.
	got := TranslateForPatient("anginal symptoms")
	if got != "anginal symptoms" {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestTranslateForPatientOrder(t *testing.T) {
	// WHAT: "acute myocardial infarction" becomes "sudden heart attack".
	// WHY: The multi-word term is replaced before the "acute" entry runs,
	// so both substitutions land.
	got := TranslateForPatient("acute myocardial infarction")
	if got != "sudden heart attack" {
		t.Errorf("got %q, want %q", got, "sudden heart attack")
	}
}
