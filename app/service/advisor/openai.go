package advisor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"meditrack/app/config"
	"meditrack/app/service/intake"

	"github.com/sashabaranov/go-openai"
)

var _ intake.SummaryAdvisor = (*openAIAdvisor)(nil)

type openAIAdvisor struct {
	client *openai.Client
	model  string
}

func newOpenAIAdvisor(cfg config.OpenAI) *openAIAdvisor {
	clientConfig := openai.DefaultConfig(cfg.Token)

	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	return &openAIAdvisor{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (a *openAIAdvisor) Summarize(ctx context.Context, log intake.HealthLog) (string, error) {
	return a.generate(ctx, buildSummaryPrompt(log))
}

func (a *openAIAdvisor) Advise(ctx context.Context, symptoms []string) (string, error) {
	return a.generate(ctx, buildAdvicePrompt(symptoms))
}

func (a *openAIAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxGenerateDuration)
	defer cancel()

	aiResponse, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxCompletionTokens: 1000,
			Temperature:         0.2,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(aiResponse.Choices[0].Message.Content), nil
}
