package quiz_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	daily     *quiz.Result
	single    *quiz.SingleResult
	err       error
	lastTheme string
}

func (s *stubService) DailyQuiz(ctx context.Context) (*quiz.Result, error) {
	return s.daily, s.err
}

func (s *stubService) SingleQuiz(ctx context.Context, theme string) (*quiz.SingleResult, error) {
	s.lastTheme = theme
	return s.single, s.err
}

func serve(t *testing.T, svc quiz.QuizService, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := quiz.Routes(quiz.NewHandler(svc))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_DailyQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubService{daily: &quiz.Result{
			Quizzes: []json.RawMessage{json.RawMessage(`{"question":"1+1?","options":["1","2","3","4"],"answer":"2"}`)},
			Source:  quiz.SourceFixtures,
		}}

		rec := serve(t, svc, "/daily-quiz")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "fixtures", rec.Header().Get(quiz.SourceHeader))
		assert.JSONEq(t, `[{"question":"1+1?","options":["1","2","3","4"],"answer":"2"}]`, rec.Body.String())
	})

	t.Run("FailureUsesFixedEnvelope", func(t *testing.T) {
		svc := &stubService{err: errors.New("open /secret/path: GOOGLE_API_KEY missing")}

		rec := serve(t, svc, "/daily-quiz")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":"Failed to load daily quizzes."}`, rec.Body.String())
		assert.False(t, strings.Contains(rec.Body.String(), "GOOGLE_API_KEY"))
	})
}

func TestHandler_SingleQuiz(t *testing.T) {
	t.Run("DefaultTheme", func(t *testing.T) {
		svc := &stubService{single: &quiz.SingleResult{
			Quiz:   json.RawMessage(`{"question":"q","options":["a","b","c","d"],"answer":"a"}`),
			Source: quiz.SourceRemote,
		}}

		rec := serve(t, svc, "/ai-quiz")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, quiz.DefaultTheme, svc.lastTheme)
		assert.Equal(t, "remote", rec.Header().Get(quiz.SourceHeader))
		assert.JSONEq(t, `{"question":"q","options":["a","b","c","d"],"answer":"a"}`, rec.Body.String())
	})

	t.Run("ThemeFromQuery", func(t *testing.T) {
		svc := &stubService{single: &quiz.SingleResult{Quiz: json.RawMessage(`{}`), Source: quiz.SourceRemote}}

		rec := serve(t, svc, "/ai-quiz?theme=Go")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Go", svc.lastTheme)
	})

	t.Run("Failure", func(t *testing.T) {
		svc := &stubService{err: quiz.ErrEmptyPool}

		rec := serve(t, svc, "/ai-quiz?theme=Go")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to load a quiz."}`, rec.Body.String())
	})
}
