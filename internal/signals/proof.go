package signals

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/daseul-kim/rejectlens/internal/textkit"
)

// ProofSignals counts quantitative claims that are substantiated by
// achievement language in their immediate context. Incidental numbers
// (dates, phone numbers, IDs, clock times) never count.
type ProofSignals struct {
	ProofCount        int
	ProofCountRaw     int
	ResumeSignalScore float64
	ProofNotes        []string
}

const proofWindowRunes = 40

// Numeric patterns that look like quantified outcomes.
var proofNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s*%`),             // percentages
	regexp.MustCompile(`\d{1,3}(?:,\d{3})+`),            // comma-grouped thousands
	regexp.MustCompile(`\d+(?:\.\d+)?\s*배`),             // Korean multiplier
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?x\b`),        // 3x style multiplier
	regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:억|천만|만)\s*원?`), // Korean magnitude units
	regexp.MustCompile(`\d+\s*(?:개월|시간|주(?:일)?|일)\s*(?:단축|절감|감소)`), // durations tied to a cut
}

// Spans that disqualify an overlapping numeric match.
var nonProofPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),              // ISO dates
	regexp.MustCompile(`\d{4}\.\s?\d{1,2}(?:\.\s?\d{1,2})?`), // dotted dates
	regexp.MustCompile(`(?:19|20)\d{2}\s*년?`),            // lone years
	regexp.MustCompile(`01[016-9][-.\s]?\d{3,4}[-.\s]?\d{4}`), // phone numbers
	regexp.MustCompile(`\d{1,2}:\d{2}`),                  // clock times
	regexp.MustCompile(`\d{6}[-\s]?\d{7}`),               // ID-number shaped
}

var impactVerbs = []string{
	"개선", "향상", "증가", "감소", "절감", "단축", "달성", "성장", "확대", "최적화", "전환",
	"improve", "increas", "reduc", "grow", "grew", "achiev", "boost", "cut", "optimiz", "sav",
}

var impactNouns = []string{
	"매출", "전환율", "리드타임", "비용", "성능", "지표", "고객", "트래픽", "가입자", "retention",
	"revenue", "conversion", "latency", "cost", "throughput", "nps", "dau", "mau",
}

// BuildProofSignals scans the resume and portfolio for qualified numeric
// proof and maps the combined count through a deliberate step function; a
// continuous mapping would suggest precision the heuristic does not have.
func BuildProofSignals(resume, portfolio string) ProofSignals {
	out := ProofSignals{ProofNotes: []string{}}

	for _, text := range []string{resume, portfolio} {
		qualified, raw, notes := countQualifiedNumbers(textkit.Normalize(text))
		out.ProofCount += qualified
		out.ProofCountRaw += raw
		out.ProofNotes = append(out.ProofNotes, notes...)
	}

	if len(out.ProofNotes) > 5 {
		out.ProofNotes = out.ProofNotes[:5]
	}

	out.ResumeSignalScore = proofScore(out.ProofCount)
	return out
}

func proofScore(qualified int) float64 {
	switch {
	case qualified >= 6:
		return 0.85
	case qualified >= 3:
		return 0.7
	case qualified >= 1:
		return 0.5
	default:
		return 0.35
	}
}

type span struct{ start, end int }

func (s span) overlaps(o span) bool { return s.start < o.end && o.start < s.end }

func countQualifiedNumbers(text string) (qualified, raw int, notes []string) {
	if text == "" {
		return 0, 0, nil
	}

	var excluded []span
	for _, re := range nonProofPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			excluded = append(excluded, span{loc[0], loc[1]})
		}
	}

	var matches []span
	for _, re := range proofNumberPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, span{loc[0], loc[1]})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var counted []span
	for _, m := range matches {
		if overlapsAny(m, excluded) {
			notes = appendNote(notes, "rejected %q: overlaps a date/phone/id pattern", text[m.start:m.end])
			continue
		}
		// two patterns matching the same figure ("1,200만원") count once
		if overlapsAny(m, counted) {
			continue
		}
		counted = append(counted, m)

		raw++

		window := strings.ToLower(textkit.Window(text, m.start, m.end, proofWindowRunes))
		if containsAnyOf(window, impactVerbs) || containsAnyOf(window, impactNouns) {
			qualified++
			continue
		}
		notes = appendNote(notes, "rejected %q: no achievement language in context", text[m.start:m.end])
	}

	return qualified, raw, notes
}

func overlapsAny(m span, spans []span) bool {
	for _, s := range spans {
		if m.overlaps(s) {
			return true
		}
	}
	return false
}

func containsAnyOf(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func appendNote(notes []string, format, match string) []string {
	if len(notes) >= 5 {
		return notes
	}
	return append(notes, fmt.Sprintf(format, strings.TrimSpace(match)))
}
