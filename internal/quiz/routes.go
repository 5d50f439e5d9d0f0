package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/daily-quiz", h.DailyQuiz)
	r.Get("/ai-quiz", h.SingleQuiz)
	return r
}
