package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dshills/empathic/internal/config"
	"github.com/dshills/empathic/internal/input"
	"github.com/dshills/empathic/internal/output"
	"github.com/dshills/empathic/internal/providers"
	"github.com/dshills/empathic/internal/review"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Review flags
var (
	flagStrategy    string
	flagProvider    string
	flagModel       string
	flagPromptStyle string
	flagFormat      string
	flagOut         string
	flagRender      bool
	flagConcurrency int
	flagNoRedact    bool
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagStrategy, "strategy", "", "Rewrite strategy (heuristic, llm)")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "Generative provider for the llm strategy (cohere, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagPromptStyle, "prompt-style", "", "Prompt style for the llm strategy (structured, freeform)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagRender, "render", false, "Render Markdown for the terminal")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Maximum comments rewritten at once")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagStrategy != "" {
		m["strategy"] = flagStrategy
	}
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagPromptStyle != "" {
		m["promptStyle"] = flagPromptStyle
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagRender {
		m["render"] = "true"
	}
	if flagConcurrency > 0 {
		m["concurrency"] = strconv.Itoa(flagConcurrency)
	}
	return m
}

func runReview(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: secret redaction is disabled")
	}

	req, err := input.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	engine := review.NewEngine(buildRewriter(cfg),
		review.WithConcurrency(cfg.Concurrency),
		review.WithLogger(logger),
	)
	report := engine.Run(context.Background(), req.Snippet, req.Comments)

	err = output.WriteReport(cmd.OutOrStdout(), report, output.Options{
		Format:  cfg.Format,
		Render:  cfg.Render,
		Width:   cfg.Width,
		OutPath: flagOut,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

// buildRewriter selects the strategy. A provider that cannot be constructed
// still yields a rewriter; each comment then carries the setup error.
func buildRewriter(cfg config.Config) review.Rewriter {
	if cfg.Strategy != config.StrategyLLM {
		return review.HeuristicRewriter{}
	}

	svc, err := providers.New(cfg.Provider, cfg.ProviderOptions())
	if err != nil {
		logger.Warn("generative provider unavailable", zap.String("provider", cfg.Provider), zap.Error(err))
	}
	return review.NewDelegatingRewriter(svc, err, review.DelegateOptions{
		Model:         cfg.Model,
		MaxTokens:     cfg.MaxTokens,
		Temperature:   cfg.Temperature,
		Timeout:       cfg.Timeout(),
		Style:         review.ParsePromptStyle(cfg.PromptStyle),
		RedactSecrets: cfg.Privacy.RedactSecrets,
	})
}
