package loader

import (
	"context"
	"path/filepath"
	"strings"

	"trivia-game/internal/domain"
)

// Loader parses a question bank source into categories, preserving first-seen
// category order and within-category question order.
type Loader interface {
	Load(ctx context.Context, source string) ([]*domain.Category, error)
}

// Factory builds a Loader for one format tag.
type Factory func() Loader

// Registry maps lowercase format tags to loader factories. Adding a format is
// a registration, not a source edit.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with the file-based formats registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("csv", func() Loader { return CSVLoader{} })
	r.Register("json", func() Loader { return JSONLoader{} })
	r.Register("xml", func() Loader { return XMLLoader{} })
	r.Register("yaml", func() Loader { return YAMLLoader{} })
	r.Register("yml", func() Loader { return YAMLLoader{} })
	return r
}

func (r *Registry) Register(tag string, factory Factory) {
	r.factories[strings.ToLower(tag)] = factory
}

// ForSource resolves the loader for a source identifier by its format tag.
func (r *Registry) ForSource(source string) (Loader, error) {
	factory, ok := r.factories[FormatTag(source)]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return factory(), nil
}

// Load resolves the loader for the source and runs it, so the registry itself
// satisfies the engine's bank loading contract.
func (r *Registry) Load(ctx context.Context, source string) ([]*domain.Category, error) {
	l, err := r.ForSource(source)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, source)
}

// FormatTag derives the registry key from a source identifier: the file
// extension for paths, or the scheme prefix for sources like "pg:general".
func FormatTag(source string) string {
	if ext := filepath.Ext(source); ext != "" {
		return strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	if i := strings.Index(source, ":"); i > 0 {
		return strings.ToLower(source[:i])
	}
	return ""
}

// BankBuilder groups questions under categories by name, keeping first-seen
// category order. All loaders share it so grouping behaves identically per format.
type BankBuilder struct {
	byName     map[string]*domain.Category
	categories []*domain.Category
}

func NewBankBuilder() *BankBuilder {
	return &BankBuilder{byName: make(map[string]*domain.Category)}
}

func (b *BankBuilder) Add(categoryName string, q *domain.Question) {
	category, ok := b.byName[categoryName]
	if !ok {
		category = &domain.Category{Name: categoryName}
		b.byName[categoryName] = category
		b.categories = append(b.categories, category)
	}
	category.AddQuestion(q)
}

func (b *BankBuilder) Categories() []*domain.Category {
	return b.categories
}

// record is the common shape of the JSON and YAML source schemas.
type record struct {
	Category      string  `json:"Category" yaml:"Category"`
	Value         int     `json:"Value" yaml:"Value"`
	Question      string  `json:"Question" yaml:"Question"`
	Options       options `json:"Options" yaml:"Options"`
	CorrectAnswer string  `json:"CorrectAnswer" yaml:"CorrectAnswer"`
}

type options struct {
	A string `json:"A" yaml:"A"`
	B string `json:"B" yaml:"B"`
	C string `json:"C" yaml:"C"`
	D string `json:"D" yaml:"D"`
}

func (o options) toMap() map[string]string {
	return map[string]string{"A": o.A, "B": o.B, "C": o.C, "D": o.D}
}

// complete reports whether a record carries everything a playable question needs.
func (r record) complete() bool {
	return r.Category != "" && r.Question != "" && r.CorrectAnswer != "" && r.Value > 0
}

func addRecords(b *BankBuilder, records []record) {
	for _, rec := range records {
		if !rec.complete() {
			continue
		}
		b.Add(rec.Category, &domain.Question{
			Text:          rec.Question,
			Value:         rec.Value,
			Options:       rec.Options.toMap(),
			CorrectAnswer: rec.CorrectAnswer,
		})
	}
}
