package aiquiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/quiz"
)

const fence = "```"

// StripFence removes one optional leading fence (with an optional language
// tag such as json) and one optional trailing fence.
func StripFence(text string) string {
	clean := strings.TrimSpace(text)

	if strings.HasPrefix(clean, fence) {
		clean = strings.TrimPrefix(clean, fence)
		clean = strings.TrimLeftFunc(clean, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		})
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), fence)

	return strings.TrimSpace(clean)
}

func ParseItems(text string) ([]quiz.QuizItem, error) {
	clean := StripFence(text)
	if clean == "" {
		return nil, errors.New("empty content")
	}
	if !strings.HasPrefix(clean, "[") {
		return nil, errors.New("expected a JSON array")
	}

	var items []quiz.QuizItem
	if err := decodeStrict(clean, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("empty quiz array")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return items, nil
}

func ParseItem(text string) (*quiz.QuizItem, error) {
	clean := StripFence(text)
	if clean == "" {
		return nil, errors.New("empty content")
	}
	if !strings.HasPrefix(clean, "{") {
		return nil, errors.New("expected a JSON object")
	}

	var item quiz.QuizItem
	if err := decodeStrict(clean, &item); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return &item, nil
}

// decodeStrict rejects trailing data after the first JSON value.
func decodeStrict(text string, v any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
