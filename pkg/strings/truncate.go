package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the default maximum length for tool
// descriptions in formatted catalog output.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateDescription.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// Truncate shortens a string to at most maxLen runes, appending "..." only
// when the input actually exceeds maxLen. An input of exactly maxLen runes
// is returned unchanged, with no ellipsis.
//
// Unlike TruncateDescription, this keeps the original whitespace intact:
// it is used for upstream notes fields where the text itself is the payload.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// TruncateDescription truncates a string to maxLen characters and ensures
// single-line output. It replaces newlines with spaces, collapses runs of
// whitespace into single spaces, and adds "..." if truncated.
//
// The function operates on runes rather than bytes so multi-byte characters
// are never split.
//
// If maxLen is less than MinTruncateLen (4), it is clamped to MinTruncateLen
// to ensure there is room for at least one character plus "...".
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
