package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"trivia-game/internal/domain"
)

// CSVLoader parses tabular banks with columns
// Category,Value,Question,OptionA,OptionB,OptionC,OptionD,CorrectAnswer.
// The header row is skipped and quoted question text may embed commas.
type CSVLoader struct{}

func (CSVLoader) Load(_ context.Context, source string) ([]*domain.Category, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	b := NewBankBuilder()
	for i, row := range rows {
		if i == 0 {
			continue
		}
		// Structurally incomplete rows are skipped, never fatal.
		if len(row) < 8 {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			continue
		}
		b.Add(strings.TrimSpace(row[0]), &domain.Question{
			Text:  strings.TrimSpace(row[2]),
			Value: value,
			Options: map[string]string{
				"A": strings.TrimSpace(row[3]),
				"B": strings.TrimSpace(row[4]),
				"C": strings.TrimSpace(row[5]),
				"D": strings.TrimSpace(row[6]),
			},
			CorrectAnswer: strings.TrimSpace(row[7]),
		})
	}
	return b.Categories(), nil
}
