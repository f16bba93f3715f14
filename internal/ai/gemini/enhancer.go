// Package gemini implements the enhancement collaborator on top of the
// Google GenAI API. Every failure path resolves to a nil enhancement; the
// core pipeline never depends on this package succeeding.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/daseul-kim/rejectlens/internal/ai"
	"github.com/daseul-kim/rejectlens/internal/util"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Enhancer asks Gemini for advisory must-have lists and confidence deltas.
type Enhancer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewEnhancer wires a content generator into the enhancement contract.
func NewEnhancer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Enhancer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enhancer{generator: generator, logger: logger, maxLogLen: maxLogLength}
}

// Enhance performs a single attempt against the provider. Any network, parse
// or shape failure is logged and yields nil; it never returns an error.
func (e *Enhancer) Enhance(ctx context.Context, jd, resume string) *ai.Enhancement {
	if e == nil || e.generator == nil {
		return nil
	}

	prompt := buildPrompt(jd, resume)

	e.logger.Debug("gemini enhancement request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		e.logger.Warn("enhancement call failed; proceeding without it", zap.Error(err))
		return nil
	}

	e.logger.Debug("gemini enhancement response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, e.maxLogLen)),
	)

	enh, err := parseResponse(raw)
	if err != nil {
		e.logger.Warn("enhancement response unusable; proceeding without it", zap.Error(err))
		return nil
	}

	return enh
}

func buildPrompt(jd, resume string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "JD:\n{{JD}}\n\nResume:\n{{RESUME}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{JD}}", jd)
	prompt = strings.ReplaceAll(prompt, "{{RESUME}}", resume)
	return prompt
}

func parseResponse(raw string) (*ai.Enhancement, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	enh := &ai.Enhancement{
		JDMustHave:      coerceStringSlice(data["jdMustHave"]),
		JDNiceToHave:    coerceStringSlice(data["jdNiceToHave"]),
		ResumeSkillTags: coerceStringSlice(data["resumeSkillTags"]),
		ConfidenceDelta: map[string]float64{},
	}

	if deltas, ok := data["confidenceDeltaByHypothesis"].(map[string]any); ok {
		for id, v := range deltas {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			enh.ConfidenceDelta[id] = ai.ClampDelta(coerceFloat(v))
		}
	}

	return enh, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		s := strings.TrimSpace(coerceString(item))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
