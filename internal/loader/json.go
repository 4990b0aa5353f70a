package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"trivia-game/internal/domain"
)

// JSONLoader parses an array of objects with fields
// Category, Value, Question, Options{A..D} and CorrectAnswer.
type JSONLoader struct{}

func (JSONLoader) Load(_ context.Context, source string) ([]*domain.Category, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	b := NewBankBuilder()
	addRecords(b, records)
	return b.Categories(), nil
}
