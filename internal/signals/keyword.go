// Package signals implements the objective signal extractors: keyword/skill
// matching between JD and resume, numeric proof counting and career facts
// scoring. Every extractor is a pure function of its inputs.
package signals

import (
	"github.com/daseul-kim/rejectlens/internal/textkit"
)

// Knockout and reliability tuning. The knockout factor applies to the match
// score itself; the objective composer layers a second, independent penalty.
const (
	knockoutMatchPenalty = 0.55
	noSignalMatchScore   = 0.35

	reliabilityKeywordCap = 8
	reliabilityTokenCap   = 250
)

// KeywordSignals is the result of matching the skill dictionary between the
// job description and the resume.
type KeywordSignals struct {
	MatchScore         float64
	MatchedKeywords    []string
	MissingKeywords    []string
	JDKeywords         []string
	Reliability        float64
	JDCritical         []string
	MissingCritical    []string
	HasKnockoutMissing bool
	Note               string
}

// BuildKeywordSignals matches the default dictionary between jd and resume.
func BuildKeywordSignals(jd, resume string) KeywordSignals {
	return BuildKeywordSignalsWithDictionary(jd, resume, Dictionary())
}

// BuildKeywordSignalsWithDictionary runs the keyword extraction against a
// caller-supplied dictionary. Zero dictionary hits in the JD yield a fixed
// low-confidence score with an explanatory note; a score is never fabricated
// from no signal.
func BuildKeywordSignalsWithDictionary(jd, resume string, dict []DictEntry) KeywordSignals {
	jd = textkit.Normalize(jd)
	resume = textkit.Normalize(resume)

	out := KeywordSignals{
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		JDKeywords:      []string{},
		JDCritical:      []string{},
		MissingCritical: []string{},
	}

	for i := range dict {
		entry := &dict[i]
		if !entry.appearsIn(jd) {
			continue
		}

		out.JDKeywords = append(out.JDKeywords, entry.Keyword)
		if entry.Critical {
			out.JDCritical = append(out.JDCritical, entry.Keyword)
		}

		if entry.appearsIn(resume) {
			out.MatchedKeywords = append(out.MatchedKeywords, entry.Keyword)
			continue
		}

		out.MissingKeywords = append(out.MissingKeywords, entry.Keyword)
		if entry.Critical {
			out.MissingCritical = append(out.MissingCritical, entry.Keyword)
		}
	}

	out.Reliability = jdReliability(len(out.JDKeywords), len(textkit.Tokenize(jd)))

	if len(out.JDKeywords) == 0 {
		out.MatchScore = noSignalMatchScore
		out.Note = "no dictionary keywords detected in the job description; match score is a low-confidence default"
		return out
	}

	out.MatchScore = float64(len(out.MatchedKeywords)) / float64(len(out.JDKeywords)) * out.Reliability

	if len(out.MissingCritical) > 0 {
		out.HasKnockoutMissing = true
		out.MatchScore *= knockoutMatchPenalty
	}

	return out
}

// jdReliability blends keyword density and JD length into a trust factor in
// [0.5,1]. Contributions cap at 8 keywords and 250 tokens; a short, keyword
// poor JD gives little to match against and its score deserves less weight.
func jdReliability(keywords, tokens int) float64 {
	kwPart := float64(keywords) / reliabilityKeywordCap
	if kwPart > 1 {
		kwPart = 1
	}
	lenPart := float64(tokens) / reliabilityTokenCap
	if lenPart > 1 {
		lenPart = 1
	}
	return 0.5 + 0.25*kwPart + 0.25*lenPart
}
