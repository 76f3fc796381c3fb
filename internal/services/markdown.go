package services

import (
	"regexp"
	"strings"
)

var (
	headingPattern  = regexp.MustCompile(`#{1,6}\s?`)
	emphasisPattern = regexp.MustCompile("[*`]")
	newlinePattern  = regexp.MustCompile(`\n{3,}`)
)

// CleanMarkdown strips the markdown decorations Gemini tends to emit
// (headings, emphasis markers, backticks) and collapses runs of blank
// lines so the UI can render the reply as plain text.
func CleanMarkdown(text string) string {
	text = headingPattern.ReplaceAllString(text, "")
	text = emphasisPattern.ReplaceAllString(text, "")
	text = newlinePattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
