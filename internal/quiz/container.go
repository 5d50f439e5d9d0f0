package quiz

import "time"

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(generator Generator, dataDir string, sampler *Sampler, generationTimeout time.Duration) *QuizContainer {
	loader := NewFixtureLoader(dataDir)
	service := NewService(generator, loader, sampler, generationTimeout)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
