package loader

import (
	"context"
	"fmt"
	"os"

	"trivia-game/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader parses the same record shape as the JSON format, for banks
// maintained by hand.
type YAMLLoader struct{}

func (YAMLLoader) Load(_ context.Context, source string) ([]*domain.Category, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	b := NewBankBuilder()
	addRecords(b, records)
	return b.Categories(), nil
}
