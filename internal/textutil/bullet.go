package textutil

import (
	"regexp"
	"strings"
)

var (
	bulletAfterPunct = regexp.MustCompile(`([.;:!?])[ \t]+- `)
	bulletAfterGap   = regexp.MustCompile(`[ \t]{2,}- `)
	blankLineRuns    = regexp.MustCompile(`\n{4,}`)
)

// FormatBulletText normalizes free text captured by questionnaire and
// permit forms: line endings become \n, dash-prefixed list items that
// follow sentence punctuation or a stretch of whitespace start on their
// own line, and runs of three or more blank lines collapse to one.
// Idempotent on already-normalized input.
func FormatBulletText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = bulletAfterPunct.ReplaceAllString(s, "$1\n- ")
	s = bulletAfterGap.ReplaceAllString(s, "\n- ")
	s = blankLineRuns.ReplaceAllString(s, "\n\n")
	return s
}
