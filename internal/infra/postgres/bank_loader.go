package postgres

import (
	"context"
	"fmt"
	"strings"

	"trivia-game/internal/domain"
	"trivia-game/internal/loader"
	"github.com/jackc/pgx/v4/pgxpool"
)

// BankLoader loads question banks from the questions table. Sources look like
// "pg:general-knowledge", where the suffix is the bank id.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) Load(ctx context.Context, source string) ([]*domain.Category, error) {
	bankID := strings.TrimPrefix(source, "pg:")

	rows, err := l.pool.Query(ctx, `
		SELECT category, value, question, option_a, option_b, option_c, option_d, correct_answer
		FROM questions
		WHERE bank_id = $1
		ORDER BY id`, bankID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	b := loader.NewBankBuilder()
	count := 0
	for rows.Next() {
		var category, question, optionA, optionB, optionC, optionD, correct string
		var value int
		if err := rows.Scan(&category, &value, &question, &optionA, &optionB, &optionC, &optionD, &correct); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		b.Add(category, &domain.Question{
			Text:          question,
			Value:         value,
			Options:       map[string]string{"A": optionA, "B": optionB, "C": optionC, "D": optionD},
			CorrectAnswer: correct,
		})
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	if count == 0 {
		return nil, domain.ErrBankNotFound
	}
	return b.Categories(), nil
}
