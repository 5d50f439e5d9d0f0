package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrGeneratorUnavailable is reported as the remote failure when no generator
// is configured, so fallback happens without any network call.
var ErrGeneratorUnavailable = errors.New("quiz generator not configured")

type Generator interface {
	GenerateDaily(ctx context.Context) ([]QuizItem, error)
	GenerateOne(ctx context.Context, theme string) (*QuizItem, error)
}

type QuizService interface {
	DailyQuiz(ctx context.Context) (*Result, error)
	SingleQuiz(ctx context.Context, theme string) (*SingleResult, error)
}

type quizService struct {
	generator         Generator
	loader            FixtureLoader
	sampler           *Sampler
	generationTimeout time.Duration
}

func NewService(generator Generator, loader FixtureLoader, sampler *Sampler, generationTimeout time.Duration) QuizService {
	if generationTimeout <= 0 {
		generationTimeout = config.DefaultGenerationTimeout
	}
	return &quizService{
		generator:         generator,
		loader:            loader,
		sampler:           sampler,
		generationTimeout: generationTimeout,
	}
}

func (s *quizService) DailyQuiz(ctx context.Context) (*Result, error) {
	log := config.WithContext(ctx)

	items, remoteErr := s.tryRemoteDaily(ctx)
	if remoteErr == nil {
		encoded, err := encodeItems(items)
		if err == nil {
			log.WithField("count", len(encoded)).Info("Daily quiz generated remotely")
			return &Result{Quizzes: encoded, Source: SourceRemote}, nil
		}
		remoteErr = err
	}

	log.WithError(remoteErr).Warn("Remote daily quiz generation failed, falling back to fixtures")

	pool, err := s.loadPool(ctx, log)
	if err != nil {
		return nil, err
	}

	daily := s.sampler.Sample(pool, DailyQuizSize)
	log.WithFields(logrus.Fields{
		"pool_size": len(pool),
		"count":     len(daily),
	}).Info("Daily quiz sampled from fixtures")

	return &Result{Quizzes: daily, Source: SourceFixtures, RemoteErr: remoteErr}, nil
}

func (s *quizService) SingleQuiz(ctx context.Context, theme string) (*SingleResult, error) {
	log := config.WithContext(ctx).WithField("theme", theme)

	item, remoteErr := s.tryRemoteOne(ctx, theme)
	if remoteErr == nil {
		encoded, err := json.Marshal(item)
		if err == nil {
			log.Info("Single quiz generated remotely")
			return &SingleResult{Quiz: encoded, Source: SourceRemote}, nil
		}
		remoteErr = err
	}

	log.WithError(remoteErr).Warn("Remote quiz generation failed, falling back to fixtures")

	pool, err := s.loadPool(ctx, log)
	if err != nil {
		return nil, err
	}

	picked := s.sampler.Sample(pool, 1)
	return &SingleResult{Quiz: picked[0], Source: SourceFixtures, RemoteErr: remoteErr}, nil
}

func (s *quizService) tryRemoteDaily(ctx context.Context) ([]QuizItem, error) {
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()
	return s.generator.GenerateDaily(ctx)
}

func (s *quizService) tryRemoteOne(ctx context.Context, theme string) (*QuizItem, error) {
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()
	return s.generator.GenerateOne(ctx, theme)
}

// loadPool is the fallback step. It gives up early if the caller is gone.
func (s *quizService) loadPool(ctx context.Context, log logrus.FieldLogger) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool, err := s.loader.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz fixtures")
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	return pool, nil
}

func encodeItems(items []QuizItem) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode generated quiz %d: %w", i, err)
		}
		out = append(out, raw)
	}
	return out, nil
}
