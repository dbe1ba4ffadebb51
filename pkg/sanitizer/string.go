package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
)

// Trim drops surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lowercases the whole string.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// RemoveExtraWhitespace collapses every whitespace run, including newlines,
// into a single space. Meant for single-line values, not document text.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// RemoveControlChars strips non-printing characters while keeping newlines and
// tabs, which carry layout information in extracted document text.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CollapseBlankLines reduces runs of three or more newlines to a paragraph
// break, keeping OCR output compact without merging paragraphs.
func CollapseBlankLines(s string) string {
	return blankLineRun.ReplaceAllString(s, "\n\n")
}

// MaxLength truncates a string to at most maxLen runes. Non-positive
// lengths yield an empty string.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	return string(runes[:min(maxLen, len(runes))])
}
