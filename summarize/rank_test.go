package summarize

import (
	"reflect"
	"testing"
)

func TestKeySentencesRanking(t *testing.T) {
	text := "The weather was nice today. " +
		"Diagnosis and treatment plan were discussed at discharge. " +
		"The patient received medication. " +
		"Ok."

	got := KeySentences(text, LengthShort)
	want := []string{
		"Diagnosis and treatment plan were discussed at discharge",
		"The patient received medication",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKeySentencesCap(t *testing.T) {
	// Five scoring sentences, short tier caps the clinician list at three.
	text := "Diagnosis one. Diagnosis two. Diagnosis three. Diagnosis four. Diagnosis five."
	if got := KeySentences(text, LengthShort); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestKeySentencesStableOrder(t *testing.T) {
	// Equal scores keep document order.
	text := "Symptoms were mild overall. Condition remained stable overnight."
	got := KeySentences(text, LengthMedium)
	want := []string{"Symptoms were mild overall", "Condition remained stable overnight"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKeySentencesNone(t *testing.T) {
	if got := KeySentences("nothing relevant in this text at all", LengthLong); len(got) != 0 {
		t.Errorf("expected no key sentences, got %v", got)
	}
}
