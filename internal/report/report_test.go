package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"trivia-game/internal/domain"
	"trivia-game/internal/event"
)

func samplePlayers() []*domain.Player {
	return []*domain.Player{
		{ID: 1, Name: "Alice", Score: 100},
		{ID: 2, Name: "Bob", Score: 0},
	}
}

func sampleEvents() []event.GameEvent {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []event.GameEvent{
		{SessionID: "GAME1", Activity: event.StartGame, Timestamp: at},
		{SessionID: "GAME1", PlayerID: 1, Activity: event.AnswerQuestion, Timestamp: at, Detail: "Science", QuestionValue: 100, AnswerGiven: "A", Result: "Correct", ScoreAfterPlay: 100},
		{SessionID: "GAME1", PlayerID: 1, Activity: event.ScoreUpdated, Timestamp: at, Detail: "Score updated", QuestionValue: 100, ScoreAfterPlay: 100},
		{SessionID: "GAME1", PlayerID: 2, Activity: event.AnswerQuestion, Timestamp: at, Detail: "History", QuestionValue: 200, AnswerGiven: "B", Result: "Incorrect", ScoreAfterPlay: 0},
	}
}

func TestTextReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := NewTextReport(path).Generate(samplePlayers(), sampleEvents()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"Players: Alice, Bob",
		"Turn 1: Alice selected Science for 100 pts",
		"Answer: A - Correct (+100 pts)",
		"Turn 2: Bob selected History for 200 pts",
		"Answer: B - Incorrect (+0 pts)",
		"Alice: 100",
		"Bob: 0",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, text)
		}
	}
	// Only answer events become turns.
	if strings.Contains(text, "Score updated") {
		t.Fatalf("expected non-answer events excluded from the summary")
	}
}

func TestJSONReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := NewJSONReport(path).Generate(samplePlayers(), sampleEvents()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var export gameExport
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}

	if export.SessionID != "GAME1" {
		t.Fatalf("expected session id GAME1, got %q", export.SessionID)
	}
	if len(export.Players) != 2 || export.Players[0].FinalScore != 100 {
		t.Fatalf("unexpected players %+v", export.Players)
	}
	if len(export.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(export.Turns))
	}
	if export.Turns[1].Player != "Bob" || export.Turns[1].Result != "Incorrect" {
		t.Fatalf("unexpected turn %+v", export.Turns[1])
	}
}

func TestPDFReportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := NewPDFReport(path).Generate(samplePlayers(), sampleEvents()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty pdf")
	}
}

func TestRegistryUnknownFormat(t *testing.T) {
	registry := DefaultRegistry(t.TempDir())
	if _, ok := registry.For("docx"); ok {
		t.Fatalf("expected docx to be unsupported")
	}
	if _, ok := registry.For("TXT"); !ok {
		t.Fatalf("expected format lookup to be case-insensitive")
	}
}
