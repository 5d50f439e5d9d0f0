package aiquiz

import (
	"context"
	"errors"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quiz"
)

type Service interface {
	GenerateDaily(ctx context.Context) ([]quiz.QuizItem, error)
	GenerateOne(ctx context.Context, theme string) (*quiz.QuizItem, error)
}

type service struct {
	provider Provider
}

// NewService accepts a nil provider; every call then fails with
// ErrConfiguration without touching the network.
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateDaily(ctx context.Context) ([]quiz.QuizItem, error) {
	log := config.WithContext(ctx)

	raw, err := s.send(ctx, BuildDailyPrompt())
	if err != nil {
		return nil, err
	}

	items, err := ParseItems(raw)
	if err != nil {
		log.WithError(err).Warn("Generated daily quiz did not parse")
		return nil, newGenerationError(ErrMalformedResponse, err)
	}
	if len(items) > quiz.DailyQuizSize {
		items = items[:quiz.DailyQuizSize]
	}

	log.Infof("Generated %d quizzes", len(items))
	return items, nil
}

func (s *service) GenerateOne(ctx context.Context, theme string) (*quiz.QuizItem, error) {
	log := config.WithContext(ctx).WithField("theme", theme)

	raw, err := s.send(ctx, BuildThemePrompt(theme))
	if err != nil {
		return nil, err
	}

	item, err := ParseItem(raw)
	if err != nil {
		log.WithError(err).Warn("Generated quiz did not parse")
		return nil, newGenerationError(ErrMalformedResponse, err)
	}
	return item, nil
}

func (s *service) send(ctx context.Context, prompt string) (string, error) {
	if s.provider == nil {
		return "", newGenerationError(ErrConfiguration, errors.New("no provider"))
	}

	raw, err := s.provider.SendPrompt(ctx, prompt)
	if err != nil {
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			return "", err
		}
		return "", newGenerationError(ErrRemoteCall, err)
	}
	return raw, nil
}
