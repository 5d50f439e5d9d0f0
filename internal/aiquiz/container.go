package aiquiz

import (
	"context"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
)

type AIQuizContainer struct {
	Service Service
}

// NewAIQuizContainer never fails: a missing key leaves the service without a
// provider so the quiz service always falls back to fixtures.
func NewAIQuizContainer(ctx context.Context, cfg *config.Config) *AIQuizContainer {
	provider, err := NewGeminiProvider(ctx, ProviderOptions{
		APIKey: cfg.GoogleAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini provider disabled, quizzes will come from fixtures")
		provider = nil
	}

	return &AIQuizContainer{
		Service: NewService(provider),
	}
}
