package docload

import "strings"

// extractText handles .txt and .md uploads: normalize line endings and drop
// control characters, otherwise pass the content through. Downstream
// normalization owns whitespace and punctuation.
func extractText(data []byte) string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isGarbageRune(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
