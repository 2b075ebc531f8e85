package advisor

import (
	"context"
	"fmt"
	"strings"

	"meditrack/app/config"
	"meditrack/app/service/intake"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var _ intake.SummaryAdvisor = (*geminiAdvisor)(nil)

type geminiAdvisor struct {
	llm *googleai.GoogleAI
}

func newGeminiAdvisor(ctx context.Context, cfg config.Gemini) (*geminiAdvisor, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai client: %w", err)
	}

	return &geminiAdvisor{llm: llm}, nil
}

func (a *geminiAdvisor) Summarize(ctx context.Context, log intake.HealthLog) (string, error) {
	return a.generate(ctx, buildSummaryPrompt(log))
}

func (a *geminiAdvisor) Advise(ctx context.Context, symptoms []string) (string, error) {
	return a.generate(ctx, buildAdvicePrompt(symptoms))
}

func (a *geminiAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxGenerateDuration)
	defer cancel()

	// A safety-blocked generation comes back as empty text without an
	// error, the caller maps that to its own fallback.
	out, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt,
		llms.WithMaxTokens(1000),
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return strings.TrimSpace(out), nil
}
