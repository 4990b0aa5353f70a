package loader

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"

	"trivia-game/internal/domain"
)

// XMLLoader parses repeated QuestionItem elements with Category, Value,
// QuestionText, Options/OptionA..D and CorrectAnswer children.
type XMLLoader struct{}

type xmlDocument struct {
	Items []xmlQuestionItem `xml:"QuestionItem"`
}

type xmlQuestionItem struct {
	Category      string     `xml:"Category"`
	Value         int        `xml:"Value"`
	QuestionText  string     `xml:"QuestionText"`
	Options       xmlOptions `xml:"Options"`
	CorrectAnswer string     `xml:"CorrectAnswer"`
}

type xmlOptions struct {
	A string `xml:"OptionA"`
	B string `xml:"OptionB"`
	C string `xml:"OptionC"`
	D string `xml:"OptionD"`
}

func (XMLLoader) Load(_ context.Context, source string) ([]*domain.Category, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read xml: %w", err)
	}
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	b := NewBankBuilder()
	for _, item := range doc.Items {
		if item.Category == "" || item.QuestionText == "" || item.CorrectAnswer == "" || item.Value <= 0 {
			continue
		}
		b.Add(item.Category, &domain.Question{
			Text:  item.QuestionText,
			Value: item.Value,
			Options: map[string]string{
				"A": item.Options.A,
				"B": item.Options.B,
				"C": item.Options.C,
				"D": item.Options.D,
			},
			CorrectAnswer: item.CorrectAnswer,
		})
	}
	return b.Categories(), nil
}
