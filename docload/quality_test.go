package docload

import (
	"strings"
	"testing"
)

func TestPrintableRatioNormal(t *testing.T) {
	ratio := printableRatio("This is a normal sentence with standard characters.")
	if ratio < 0.95 {
		t.Errorf("printable ratio = %f, want >= 0.95", ratio)
	}
}

func TestPrintableRatioGarbage(t *testing.T) {
	// PUA runes and control characters are what a CIDFont without ToUnicode
	// decodes to.
	garbage := "abcdefghi\x01\x02\x03\x04\x05"
	if ratio := printableRatio(garbage); ratio >= minPrintableRatio {
		t.Errorf("printable ratio = %f, want < %f", ratio, minPrintableRatio)
	}
}

func TestWordlikeRatioSingleChars(t *testing.T) {
	// Character-by-character extraction produces one-rune tokens.
	tokens := strings.Fields("a b c d e f g h i j k l")
	if ratio := wordlikeRatio(tokens); ratio >= minWordlikeRatio {
		t.Errorf("wordlike ratio = %f, want < %f", ratio, minWordlikeRatio)
	}
}

func TestIsReadable(t *testing.T) {
	good := strings.Repeat("the patient was admitted with chest pain ", 5)
	if !isReadable(good) {
		t.Error("normal prose should be readable")
	}

	broken := strings.Repeat("a b c d e f g h i j ", 5)
	if isReadable(broken) {
		t.Error("single-character soup should fail the gate")
	}
}
