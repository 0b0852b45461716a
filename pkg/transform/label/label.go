// Package label canonicalizes the inner value of a <label>...</label> span
// through a lookup table. Values missing from the table pass through
// unchanged.
package label

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<label>(.*?)</label>`)

// First returns the inner value of the first <label> span in text.
func First(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	m := tagPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// TagCount reports how many <label> spans text contains. Records are assumed
// to carry at most one; callers surface anything beyond that.
func TagCount(text string) int {
	if text == "" {
		return 0
	}
	return len(tagPattern.FindAllStringIndex(text, -1))
}

// Normalize rewrites the first <label> span's inner value through mapping.
// Text without a span, or with an unmapped inner value, is returned
// character-for-character unchanged. Only the first literal occurrence of the
// exact span is replaced.
func Normalize(text string, mapping map[string]string) string {
	inner, ok := First(text)
	if !ok {
		return text
	}
	mapped, ok := mapping[inner]
	if !ok || mapped == inner {
		return text
	}
	old := "<label>" + inner + "</label>"
	return strings.Replace(text, old, "<label>"+mapped+"</label>", 1)
}
