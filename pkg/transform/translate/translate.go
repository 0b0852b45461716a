// Package translate rewrites known source-language terms inside free text to
// their localized equivalents. Matching is case-insensitive and respects word
// boundaries; longer terms are applied before shorter ones so a compound term
// is never shadowed by one of its components.
package translate

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type rule struct {
	re          *regexp.Regexp
	replacement string
}

// Rules is a term table compiled into a fixed application order. Compile once
// per table; Apply is pure and safe for concurrent use.
type Rules []rule

// Compile builds the ordered rule set from a source→target term table.
// Entries are ordered longest source term first (by character count, not
// bytes), with a lexicographic tie-break so the order is deterministic.
func Compile(terms map[string]string) Rules {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, nj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if ni != nj {
			return ni > nj
		}
		return keys[i] < keys[j]
	})
	rs := make(Rules, 0, len(keys))
	for _, k := range keys {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(k))
		rs = append(rs, rule{re: re, replacement: terms[k]})
	}
	return rs
}

func (rs Rules) Len() int { return len(rs) }

// Apply folds the rules left-to-right over text. Each replacement is inserted
// literally, so the target term's casing is preserved and `$` is never
// expanded. Empty input is returned unchanged.
func (rs Rules) Apply(text string) string {
	if text == "" || len(rs) == 0 {
		return text
	}
	for _, r := range rs {
		text = r.replaceBounded(text)
	}
	return text
}

// replaceBounded replaces every occurrence of the rule's term that is bounded
// by non-word runes (start and end of string count as boundaries). Boundaries
// are checked against Unicode word runes, so a term abutting Hangul, such as
// an English term with a Korean particle attached, is not replaced.
func (r rule) replaceBounded(text string) string {
	locs := r.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		if !bounded(text, loc[0], loc[1]) {
			continue
		}
		b.WriteString(text[prev:loc[0]])
		b.WriteString(r.replacement)
		prev = loc[1]
	}
	if prev == 0 {
		return text
	}
	b.WriteString(text[prev:])
	return b.String()
}

func bounded(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// isWordRune mirrors the \w class over full Unicode: letters, digits and
// underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
