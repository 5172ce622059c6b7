package docload

import (
	"strings"
	"unicode"
)

// Readability gate thresholds. A PDF that decodes to mostly garbage runes or
// non-word tokens is almost always a scanned/image-only document whose text
// layer is noise.
const (
	minPrintableRatio = 0.85
	minWordlikeRatio  = 0.40
	wordlikeMinTokens = 20
)

// isReadable reports whether extracted text looks like real prose.
func isReadable(text string) bool {
	if printableRatio(text) < minPrintableRatio {
		return false
	}
	tokens := strings.Fields(text)
	if len(tokens) >= wordlikeMinTokens && wordlikeRatio(tokens) < minWordlikeRatio {
		return false
	}
	return true
}

// printableRatio returns the fraction of printable characters in text.
func printableRatio(text string) float64 {
	if len(text) == 0 {
		return 1.0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if isGarbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

// isGarbageRune flags Private Use Area runes, the replacement character, and
// control characters other than whitespace, typical of broken font encodings.
func isGarbageRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	if r < 0x0020 && r != '\n' && r != '\r' && r != '\t' {
		return true
	}
	return false
}

// wordlikeRatio returns the fraction of tokens with a word-like length (2-15 runes).
func wordlikeRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	wordlike := 0
	for _, t := range tokens {
		if n := len([]rune(t)); n >= 2 && n <= 15 {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(tokens))
}
