package memory

import (
	"context"
	"testing"
	"time"

	"trivia-game/internal/domain"
)

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) Load(ctx context.Context, source string) ([]*domain.Category, error) {
	l.calls++
	return l.BankLoader.Load(ctx, source)
}

func sampleBank() []*domain.Category {
	return []*domain.Category{
		{
			Name: "Science",
			Questions: []*domain.Question{
				{
					Text:          "What is 2 + 2?",
					Value:         100,
					Options:       map[string]string{"A": "3", "B": "4", "C": "5", "D": "6"},
					CorrectAnswer: "B",
				},
			},
		},
	}
}

func TestBankRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		BankLoader: NewStaticBankLoader(map[string][]*domain.Category{"bank-1": sampleBank()}),
	}
	repo := NewBankRepository(loader, time.Minute)

	if _, err := repo.LoadBank(context.Background(), "bank-1"); err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.LoadBank(context.Background(), "bank-1"); err != nil {
		t.Fatalf("load bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestBankRepositoryReturnsFreshCopies(t *testing.T) {
	repo := NewBankRepository(NewStaticBankLoader(map[string][]*domain.Category{"bank-1": sampleBank()}), time.Minute)

	first, err := repo.LoadBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	first[0].Questions[0].Answered = true

	second, err := repo.LoadBank(context.Background(), "bank-1")
	if err != nil {
		t.Fatalf("load bank again: %v", err)
	}
	if second[0].Questions[0].Answered {
		t.Fatalf("expected answered flag not to leak into a fresh load")
	}
}

func TestBankRepositoryUnknownSource(t *testing.T) {
	repo := NewBankRepository(NewStaticBankLoader(nil), time.Minute)
	if _, err := repo.LoadBank(context.Background(), "missing"); err != domain.ErrBankNotFound {
		t.Fatalf("expected bank not found, got %v", err)
	}
}
