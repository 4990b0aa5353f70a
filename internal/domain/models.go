package domain

import "strings"

// OptionKeys is the fixed set of answer keys every question carries.
var OptionKeys = []string{"A", "B", "C", "D"}

// Player represents a game participant and their accumulated score.
type Player struct {
	ID    int
	Name  string
	Score int
}

// AddPoints adjusts the player's score. Negative amounts are allowed.
func (p *Player) AddPoints(amount int) {
	p.Score += amount
}

// Question models an MCQ question with a point value and exactly one correct key.
type Question struct {
	Text          string            `json:"text"`
	Value         int               `json:"value"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Answered      bool              `json:"answered"`
}

// CheckAnswer reports whether key matches the correct answer key, case-insensitively.
func (q *Question) CheckAnswer(key string) bool {
	return strings.EqualFold(q.CorrectAnswer, key)
}

// Category groups questions under a name used as a case-insensitive lookup key.
type Category struct {
	Name      string      `json:"name"`
	Questions []*Question `json:"questions"`
}

// AddQuestion appends a question, preserving load order.
func (c *Category) AddQuestion(q *Question) {
	c.Questions = append(c.Questions, q)
}

// Question returns the first question with the given point value, or nil.
// When a source carries duplicate values the first loaded one wins; later
// duplicates are unreachable through selection.
func (c *Category) Question(value int) *Question {
	for _, q := range c.Questions {
		if q.Value == value {
			return q
		}
	}
	return nil
}

// CloneCategories deep-copies a bank so answered flags never leak between
// sessions sharing a cached load.
func CloneCategories(categories []*Category) []*Category {
	out := make([]*Category, 0, len(categories))
	for _, c := range categories {
		clone := &Category{Name: c.Name, Questions: make([]*Question, 0, len(c.Questions))}
		for _, q := range c.Questions {
			options := make(map[string]string, len(q.Options))
			for k, v := range q.Options {
				options[k] = v
			}
			clone.Questions = append(clone.Questions, &Question{
				Text:          q.Text,
				Value:         q.Value,
				Options:       options,
				CorrectAnswer: q.CorrectAnswer,
				Answered:      q.Answered,
			})
		}
		out = append(out, clone)
	}
	return out
}
