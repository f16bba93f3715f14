// Package facts defines the read-only input contract of one analysis run:
// the application texts, structured career facts, self-assessment ratings
// and the pipeline stage the rejection happened at.
package facts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Pipeline stages. Stage gating elsewhere only checks for the resume /
// interview markers, so free-form stage strings still work.
const (
	StageResume         = "서류"
	StageAssignment     = "과제"
	StageFirstInterview = "1차 면접"
	StageFinalInterview = "최종 면접"
	StageOffer          = "처우 협의"
)

// CareerFacts holds the structured career summary. All fields are
// non-negative; months are calendar months.
type CareerFacts struct {
	TotalYears       int `mapstructure:"total-years"`
	GapMonths        int `mapstructure:"gap-months"`
	JobChanges       int `mapstructure:"job-changes"`
	LastTenureMonths int `mapstructure:"last-tenure-months"`
}

// SelfCheck carries the five 1-5 self-assessment ratings.
type SelfCheck struct {
	CoreFit          int `mapstructure:"core-fit"`
	ProofStrength    int `mapstructure:"proof-strength"`
	RoleClarity      int `mapstructure:"role-clarity"`
	StoryConsistency int `mapstructure:"story-consistency"`
	RiskSignals      int `mapstructure:"risk-signals"`
}

// HistoryEntry describes one position in the optional career history.
// Either Months or a Start/End pair ("YYYY-MM") may be provided.
type HistoryEntry struct {
	Months         int    `mapstructure:"months"`
	Start          string `mapstructure:"start"`
	End            string `mapstructure:"end"`
	Industry       string `mapstructure:"industry"`
	EmploymentType string `mapstructure:"employment-type"`
}

// DurationMonths returns the entry duration, preferring the explicit Months
// value and falling back to the Start/End dates. Returns 0 when neither is
// usable; callers must treat 0 as "unknown", never as a risk signal.
func (h HistoryEntry) DurationMonths() int {
	if h.Months > 0 {
		return h.Months
	}
	start, okS := parseYearMonth(h.Start)
	end, okE := parseYearMonth(h.End)
	if !okS || !okE || end < start {
		return 0
	}
	return end - start
}

func parseYearMonth(s string) (int, bool) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1900 || year > 2200 {
		return 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return year*12 + month - 1, true
}

// InputFacts is the full input of one analysis run. The core never mutates
// it; Sanitized returns the coerced copy the pipeline actually consumes.
type InputFacts struct {
	Company        string         `mapstructure:"company"`
	Role           string         `mapstructure:"role"`
	JD             string         `mapstructure:"jd"`
	Resume         string         `mapstructure:"resume"`
	Portfolio      string         `mapstructure:"portfolio"`
	InterviewNotes string         `mapstructure:"interview-notes"`
	Career         CareerFacts    `mapstructure:"career"`
	SelfCheck      SelfCheck      `mapstructure:"self-check"`
	Stage          string         `mapstructure:"stage"`
	CareerHistory  []HistoryEntry `mapstructure:"career-history"`
}

// Sanitized returns a copy with malformed values coerced to safe defaults:
// negative counts become zero, out-of-range self ratings become the neutral 3
// and strings are trimmed. Missing input is never an error.
func (f InputFacts) Sanitized() InputFacts {
	f.Company = strings.TrimSpace(f.Company)
	f.Role = strings.TrimSpace(f.Role)
	f.Stage = strings.TrimSpace(f.Stage)

	f.Career.TotalYears = nonNegative(f.Career.TotalYears)
	f.Career.GapMonths = nonNegative(f.Career.GapMonths)
	f.Career.JobChanges = nonNegative(f.Career.JobChanges)
	f.Career.LastTenureMonths = nonNegative(f.Career.LastTenureMonths)

	f.SelfCheck.CoreFit = coerceRating(f.SelfCheck.CoreFit)
	f.SelfCheck.ProofStrength = coerceRating(f.SelfCheck.ProofStrength)
	f.SelfCheck.RoleClarity = coerceRating(f.SelfCheck.RoleClarity)
	f.SelfCheck.StoryConsistency = coerceRating(f.SelfCheck.StoryConsistency)
	f.SelfCheck.RiskSignals = coerceRating(f.SelfCheck.RiskSignals)

	return f
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func coerceRating(v int) int {
	if v < 1 || v > 5 {
		return 3
	}
	return v
}

// IsResumeStage reports whether the rejection happened at a resume-screening
// stage.
func (f InputFacts) IsResumeStage() bool {
	return containsAny(f.Stage, "서류", "resume")
}

// IsInterviewStage reports whether the rejection happened at any interview
// stage.
func (f InputFacts) IsInterviewStage() bool {
	return containsAny(f.Stage, "면접", "interview")
}

// HasCareerHistory reports whether the optional career history was provided
// with at least one entry of usable duration.
func (f InputFacts) HasCareerHistory() bool {
	for _, h := range f.CareerHistory {
		if h.DurationMonths() > 0 {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// FromFile loads input facts from a YAML/JSON/TOML file. The decode is
// weakly typed so quoted numbers in hand-written files still land in the
// integer fields.
func FromFile(path string) (*InputFacts, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading facts file %q: %w", path, err)
	}

	var f InputFacts
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building facts decoder: %w", err)
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding facts file %q: %w", path, err)
	}

	return &f, nil
}
