package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

const (
	DailyQuizSize = 10
	OptionCount   = 4
	DefaultTheme  = "JavaScript"
)

var ErrInvalidQuizItem = errors.New("invalid quiz item")

type QuizItem struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Validate enforces the shape a generated item must have. Fixture items are
// never validated.
func (q QuizItem) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("%w: empty question", ErrInvalidQuizItem)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuizItem, OptionCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidQuizItem, i)
		}
	}
	if q.Answer == "" {
		return fmt.Errorf("%w: empty answer", ErrInvalidQuizItem)
	}
	if !slices.Contains(q.Options, q.Answer) {
		return fmt.Errorf("%w: answer %q is not one of the options", ErrInvalidQuizItem, q.Answer)
	}
	return nil
}

// chapter only exposes the field the loader needs; everything else in a
// chapter object is ignored.
type chapter struct {
	Quizzes json.RawMessage `json:"quizzes"`
}

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFixtures Source = "fixtures"
)

// Result is the outcome of the daily pipeline. RemoteErr is set when the
// quizzes came from fixtures because generation failed.
type Result struct {
	Quizzes   []json.RawMessage
	Source    Source
	RemoteErr error
}

type SingleResult struct {
	Quiz      json.RawMessage
	Source    Source
	RemoteErr error
}
