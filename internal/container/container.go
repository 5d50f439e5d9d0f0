package container

import (
	"context"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/aiquiz"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quiz"
)

type Container struct {
	Config          *config.Config
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
}

func New(ctx context.Context, cfg *config.Config) *Container {
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, cfg)
	quizContainer := quiz.NewQuizContainer(
		aiQuizContainer.Service,
		cfg.DataDir,
		quiz.NewTimeSeededSampler(),
		cfg.GenerationTimeout,
	)

	config.Logger.WithField("data_dir", cfg.DataDir).Info("Quiz service wired")

	return &Container{
		Config:          cfg,
		AIQuizContainer: aiQuizContainer,
		QuizContainer:   quizContainer,
	}
}
