package aiquiz

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/quiz"
)

var dailyCategories = []string{
	"science",
	"history",
	"geography",
	"literature and arts",
	"technology and programming",
	"general knowledge",
}

const itemFormat = `{
  "question": "question text",
  "options": ["option 1", "option 2", "option 3", "option 4"],
  "answer": "the correct option, copied exactly from options",
  "explanation": "one or two sentences on why the answer is correct"
}`

func BuildDailyPrompt() string {
	return fmt.Sprintf(
		"Create %d multiple-choice quiz questions spread across these categories: %s. "+
			"Each question must have exactly %d options and exactly one correct answer. "+
			"Reply with a JSON array only, no other text. Each element must follow this format:\n%s",
		quiz.DailyQuizSize, strings.Join(dailyCategories, ", "), quiz.OptionCount, itemFormat,
	)
}

func BuildThemePrompt(theme string) string {
	if strings.TrimSpace(theme) == "" {
		theme = quiz.DefaultTheme
	}
	return fmt.Sprintf(
		"Create one multiple-choice quiz question about %q. "+
			"It must have exactly %d options and exactly one correct answer. "+
			"Reply with a single JSON object only, no other text, in this format:\n%s",
		theme, quiz.OptionCount, itemFormat,
	)
}
