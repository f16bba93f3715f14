package signals

import (
	"strings"

	"github.com/daseul-kim/rejectlens/internal/textkit"
)

// DictEntry is one skill-dictionary row. Critical entries are must-have
// requirements: their absence from the resume triggers the knockout penalty.
type DictEntry struct {
	Keyword  string   `mapstructure:"keyword"`
	Aliases  []string `mapstructure:"aliases"`
	Critical bool     `mapstructure:"critical"`

	matchers []textkit.KeywordMatcher
}

// compile prepares the boundary matchers for the keyword and all aliases.
func (e *DictEntry) compile() {
	e.matchers = e.matchers[:0]
	for _, kw := range append([]string{e.Keyword}, e.Aliases...) {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		e.matchers = append(e.matchers, textkit.NewKeywordMatcher(kw))
	}
}

// appearsIn reports whether the keyword or any alias occurs in the text.
func (e *DictEntry) appearsIn(text string) bool {
	for _, m := range e.matchers {
		if m.Matches(text) {
			return true
		}
	}
	return false
}

// defaultDictionary is the static skill table. Loaded once, never mutated at
// runtime, safe to share across concurrent analyses.
var defaultDictionary = buildDictionary([]DictEntry{
	{Keyword: "sql", Aliases: []string{"mysql", "postgresql", "oracle", "쿼리"}, Critical: true},
	{Keyword: "python", Aliases: []string{"파이썬", "pandas", "numpy"}, Critical: true},
	{Keyword: "react", Aliases: []string{"리액트", "react.js", "reactjs"}, Critical: true},
	{Keyword: "java", Aliases: []string{"자바"}, Critical: true},
	{Keyword: "javascript", Aliases: []string{"자바스크립트", "js", "es6"}},
	{Keyword: "typescript", Aliases: []string{"타입스크립트", "ts"}},
	{Keyword: "kotlin", Aliases: []string{"코틀린"}},
	{Keyword: "go", Aliases: []string{"golang", "고랭"}},
	{Keyword: "c++", Aliases: []string{"cpp"}},
	{Keyword: "spring", Aliases: []string{"스프링", "spring boot", "스프링부트"}},
	{Keyword: "django", Aliases: []string{"장고"}},
	{Keyword: "node.js", Aliases: []string{"nodejs", "노드"}},
	{Keyword: "aws", Aliases: []string{"amazon web services", "ec2", "s3"}},
	{Keyword: "gcp", Aliases: []string{"google cloud"}},
	{Keyword: "docker", Aliases: []string{"도커", "컨테이너"}},
	{Keyword: "kubernetes", Aliases: []string{"쿠버네티스", "k8s"}},
	{Keyword: "kafka", Aliases: []string{"카프카"}},
	{Keyword: "redis", Aliases: []string{"레디스"}},
	{Keyword: "elasticsearch", Aliases: []string{"엘라스틱서치", "elk"}},
	{Keyword: "git", Aliases: []string{"github", "gitlab", "깃"}},
	{Keyword: "ci/cd", Aliases: []string{"jenkins", "젠킨스", "배포 자동화"}},
	{Keyword: "tableau", Aliases: []string{"태블로"}},
	{Keyword: "excel", Aliases: []string{"엑셀", "스프레드시트"}},
	{Keyword: "ga", Aliases: []string{"google analytics", "구글 애널리틱스"}},
	{Keyword: "a/b 테스트", Aliases: []string{"ab test", "a/b test", "실험 설계"}},
	{Keyword: "machine learning", Aliases: []string{"머신러닝", "딥러닝", "ml"}},
	{Keyword: "figma", Aliases: []string{"피그마"}},
	{Keyword: "jira", Aliases: []string{"지라", "confluence"}},
})

// Dictionary returns the active skill dictionary.
func Dictionary() []DictEntry {
	return defaultDictionary
}

// BuildDictionary merges extra entries (from configuration) after the static
// table and compiles all matchers. Call once at startup; the result must not
// be mutated afterwards.
func BuildDictionary(extra []DictEntry) []DictEntry {
	merged := make([]DictEntry, 0, len(defaultDictionary)+len(extra))
	merged = append(merged, defaultDictionary...)
	merged = append(merged, extra...)
	return buildDictionary(merged)
}

func buildDictionary(entries []DictEntry) []DictEntry {
	out := make([]DictEntry, 0, len(entries))
	for _, e := range entries {
		e.Keyword = strings.ToLower(strings.TrimSpace(e.Keyword))
		if e.Keyword == "" {
			continue
		}
		e.compile()
		out = append(out, e)
	}
	return out
}
