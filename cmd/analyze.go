package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/daseul-kim/rejectlens/internal/ai"
	"github.com/daseul-kim/rejectlens/internal/ai/gemini"
	"github.com/daseul-kim/rejectlens/internal/analysis"
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/logger"
	"github.com/daseul-kim/rejectlens/internal/secrets"
	"github.com/daseul-kim/rejectlens/internal/signals"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	defaultEnhancementTimeout = 60 * time.Second
)

var aiConsentPrompt = promptui.Select{
	Label: "Send the JD and resume to the configured AI provider?",
	Items: []string{PromptYes, PromptNo},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a rejection: extract signals, score the application and rank hypotheses",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("input", "i", "", "facts file with the JD, resume and career data (required)")
	analyzeCmd.Flags().StringP("output", "o", "", "write the rendered report to a file instead of stdout")
	analyzeCmd.Flags().String("dump-json", "", "also dump the full analysis result as JSON to a file")
	analyzeCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before calling the AI provider")

	if err := analyzeCmd.MarkFlagRequired("input"); err != nil {
		log.Fatalf("marking input flag required: %v", err)
	}
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		config = &Config{}
	}

	logger.Info("starting the rejectlens", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	inputFile := cmd.Flag("input").Value.String()

	f, err := facts.FromFile(inputFile)
	if err != nil {
		logger.Fatal("loading facts", zap.Error(err), zap.String("file", inputFile))
	}

	deps := analysis.Deps{
		Logger:     logger,
		Dictionary: buildDictionary(config, logger),
	}

	if enhancer := prepareEnhancer(ctx, cmd, config.AI, logger); enhancer != nil {
		deps.Enhancer = enhancer
	}

	enhanceCtx, cancel := context.WithTimeout(ctx, enhancementTimeout(config.AI))
	defer cancel()

	result := analysis.Analyze(enhanceCtx, f, deps)

	logger.Info("analysis finished",
		zap.Float64("objective_score", result.Objective.Score),
		zap.Int("flags", len(result.Flags)),
		zap.Int("risks", len(result.Risks)),
		zap.Int("hypotheses", len(result.Hypotheses)),
		zap.Bool("enhanced", result.Enhanced),
	)

	if err := writeReport(cmd, config, result); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	if dumpFile := cmd.Flag("dump-json").Value.String(); dumpFile != "" {
		if err := dumpResult(dumpFile, result); err != nil {
			logger.Fatal("dumping result to file", zap.Error(err))
		}
		logger.Info("dumped result to file", zap.String("filename", dumpFile))
	}
}

func buildDictionary(config *Config, logger *zap.Logger) []signals.DictEntry {
	if len(config.Dictionary) == 0 {
		return nil
	}

	logger.Debug("extending the skill dictionary", zap.Int("extra_entries", len(config.Dictionary)))
	return signals.BuildDictionary(config.Dictionary)
}

func writeReport(cmd *cobra.Command, config *Config, result *analysis.Result) error {
	output := cmd.Flag("output").Value.String()
	if output == "" && config.Report != nil {
		output = config.Report.Output
	}

	if output == "" {
		fmt.Print(result.Report)
		return nil
	}

	if err := os.WriteFile(output, []byte(result.Report), 0o644); err != nil {
		return fmt.Errorf("writing report to %q: %w", output, err)
	}
	return nil
}

func dumpResult(filename string, result *analysis.Result) error {
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(filename, pretty, 0o644); err != nil {
		return fmt.Errorf("writing result to %q: %w", filename, err)
	}
	return nil
}

// prepareEnhancer builds the optional AI collaborator. Any failure here only
// disables the enhancement; the heuristics pipeline runs regardless.
func prepareEnhancer(ctx context.Context, cmd *cobra.Command, config *AIConfig, logger *zap.Logger) ai.Enhancer {
	if config == nil || !config.Enabled {
		return nil
	}

	if !confirmAICall(cmd, logger) {
		logger.Info("skipping AI enhancement", zap.String("reason", "not confirmed"))
		return nil
	}

	enhancer, err := newAIEnhancer(ctx, config, logger)
	if err != nil {
		logger.Warn("skipping AI enhancement", zap.Error(err))
		return nil
	}

	return enhancer
}

// confirmAICall asks before any application text leaves the machine.
func confirmAICall(cmd *cobra.Command, logger *zap.Logger) bool {
	if cmd.Flag("yes").Value.String() == "true" {
		return true
	}

	_, action, err := aiConsentPrompt.Run()
	if err != nil {
		logger.Warn("confirmation prompt failed", zap.Error(err))
		return false
	}

	return action == PromptYes
}

func newAIEnhancer(ctx context.Context, cfg *AIConfig, baseLogger *zap.Logger) (ai.Enhancer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai enhancement is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	enhancerLogger := logger.WithCommonFields(baseLogger, "gemini", generator.Model())

	return gemini.NewEnhancer(generator, enhancerLogger, cfg.Gemini.MaxLogLength), nil
}

func enhancementTimeout(cfg *AIConfig) time.Duration {
	if cfg == nil || cfg.Gemini == nil || cfg.Gemini.TimeoutSeconds <= 0 {
		return defaultEnhancementTimeout
	}
	return time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
}
