// Package textkit provides the text canonicalization and tokenization
// primitives shared by all signal extractors. Every function is stateless and
// safe for concurrent use.
package textkit

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes raw user text: NFC normalization (Korean input
// arrives in mixed normal forms), per-line whitespace collapsing and trimming.
// Line breaks are preserved. An empty or whitespace-only input yields "".
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Tokenize lowercases the text and splits it into tokens. A rune belongs to a
// token when it is ascii alphanumeric, a Korean syllable, or one of "+./#-"
// so that tech terms like "c++", "c#" and "node.js" survive as single tokens.
// Trailing dots and dashes are stripped from each token.
func Tokenize(s string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.Trim(word.String(), ".-")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(s) {
		if isTokenRune(r) {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= '가' && r <= '힣':
		return true
	case r == '+' || r == '.' || r == '/' || r == '#' || r == '-':
		return true
	}
	return false
}

// Similarity computes the Jaccard index over the two token sets. Two empty
// sets are trivially identical (1.0); exactly one empty set means no overlap
// is possible (0.0).
func Similarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}

	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

// KeywordMatcher matches a single keyword against free text. Alphanumeric
// keywords use a boundary-anchored case-insensitive match so "java" never
// fires inside "javascript"; Korean keywords use substring containment since
// word boundaries do not carry over.
type KeywordMatcher struct {
	keyword string
	re      *regexp.Regexp
}

// NewKeywordMatcher compiles a matcher for the given keyword. Intended to be
// called once per dictionary entry at startup.
func NewKeywordMatcher(keyword string) KeywordMatcher {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	m := KeywordMatcher{keyword: keyword}
	if keyword == "" {
		return m
	}

	if isASCII(keyword) {
		// regexp has no lookarounds; emulate \b with explicit non-word
		// classes so keywords ending in "+" or "#" still anchor.
		m.re = regexp.MustCompile(`(?i)(^|[^a-z0-9])` + regexp.QuoteMeta(keyword) + `([^a-z0-9]|$)`)
	}
	return m
}

// Matches reports whether the keyword occurs in the text.
func (m KeywordMatcher) Matches(text string) bool {
	if m.keyword == "" || text == "" {
		return false
	}
	if m.re != nil {
		return m.re.MatchString(text)
	}
	return strings.Contains(strings.ToLower(text), m.keyword)
}

// Keyword returns the canonical (lowercased) keyword.
func (m KeywordMatcher) Keyword() string { return m.keyword }

func isASCII(s string) bool {
	for _, r := range s {
		if r >= 128 {
			return false
		}
	}
	return true
}

// Window returns the text surrounding [start,end) byte offsets, expanded by
// up to n runes on each side. Offsets are clamped to valid rune boundaries.
func Window(s string, start, end, n int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start > end {
		start = end
	}

	lo := start
	for i := 0; i < n && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < n && hi < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[hi:])
		hi += size
	}
	return s[lo:hi]
}
