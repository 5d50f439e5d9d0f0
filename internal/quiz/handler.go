package quiz

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
)

const (
	SourceHeader = "X-Quiz-Source"

	msgDailyFailed  = "Failed to load daily quizzes."
	msgSingleFailed = "Failed to load a quiz."
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) DailyQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	result, err := h.service.DailyQuiz(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build daily quiz")
		config.Error(w, http.StatusInternalServerError, msgDailyFailed)
		return
	}

	w.Header().Set(SourceHeader, string(result.Source))
	config.JSON(w, http.StatusOK, result.Quizzes)
}

func (h *Handler) SingleQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	theme := strings.TrimSpace(r.URL.Query().Get("theme"))
	if theme == "" {
		theme = DefaultTheme
	}

	result, err := h.service.SingleQuiz(r.Context(), theme)
	if err != nil {
		log.WithError(err).WithField("theme", theme).Error("Failed to build quiz")
		config.Error(w, http.StatusInternalServerError, msgSingleFailed)
		return
	}

	w.Header().Set(SourceHeader, string(result.Source))
	config.JSON(w, http.StatusOK, result.Quiz)
}
