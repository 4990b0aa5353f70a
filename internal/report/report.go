package report

import (
	"strings"

	"trivia-game/internal/domain"
	"trivia-game/internal/event"
)

// Generator renders a post-game summary from the player list and the full
// event history. Implementations own their output destination.
type Generator interface {
	Generate(players []*domain.Player, events []event.GameEvent) error
}

// Factory builds a Generator for one format tag.
type Factory func() Generator

// Registry maps lowercase format tags to generator factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with the built-in formats writing into dir.
func DefaultRegistry(dir string) *Registry {
	r := NewRegistry()
	r.Register("txt", func() Generator { return NewTextReport(inDir(dir, "report.txt")) })
	r.Register("pdf", func() Generator { return NewPDFReport(inDir(dir, "report.pdf")) })
	r.Register("json", func() Generator { return NewJSONReport(inDir(dir, "report.json")) })
	return r
}

func (r *Registry) Register(tag string, factory Factory) {
	r.factories[strings.ToLower(tag)] = factory
}

// For resolves the generator for a format tag.
func (r *Registry) For(format string) (Generator, bool) {
	factory, ok := r.factories[strings.ToLower(format)]
	if !ok {
		return nil, false
	}
	return factory(), true
}

func inDir(dir, name string) string {
	if dir == "" {
		return name
	}
	return strings.TrimRight(dir, "/") + "/" + name
}

func playerName(players []*domain.Player, id int) string {
	for _, p := range players {
		if p.ID == id {
			return p.Name
		}
	}
	return "Unknown"
}

func awardedPoints(e event.GameEvent) int {
	if e.Result == "Correct" {
		return e.QuestionValue
	}
	return 0
}
