package event

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileLoggerWritesOneLinePerEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_event_log.csv")
	logger := NewFileLogger(path)

	e := GameEvent{
		SessionID:      "GAME123",
		PlayerID:       2,
		Activity:       AnswerQuestion,
		Timestamp:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Detail:         "Science, advanced",
		QuestionValue:  200,
		AnswerGiven:    "A, final answer",
		Result:         "Correct",
		ScoreAfterPlay: 200,
	}
	if err := logger.HandleEvent(e); err != nil {
		t.Fatalf("handle event: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	fields := strings.Split(lines[0], ",")
	if len(fields) != 9 {
		t.Fatalf("expected 9 fields, got %d: %q", len(fields), lines[0])
	}
	if fields[4] != "Science; advanced" {
		t.Fatalf("expected comma escaped in detail, got %q", fields[4])
	}
	if fields[6] != "A; final answer" {
		t.Fatalf("expected comma escaped in answer, got %q", fields[6])
	}
	if fields[3] != "2024-06-01T12:00:00Z" {
		t.Fatalf("expected RFC3339 timestamp, got %q", fields[3])
	}
}

func TestFileLoggerAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_event_log.csv")

	first := NewFileLogger(path)
	if err := first.HandleEvent(GameEvent{SessionID: "GAME1", Activity: StartGame, Timestamp: time.Now()}); err != nil {
		t.Fatalf("first session write: %v", err)
	}
	second := NewFileLogger(path)
	if err := second.HandleEvent(GameEvent{SessionID: "GAME2", Activity: StartGame, Timestamp: time.Now()}); err != nil {
		t.Fatalf("second session write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected log to survive across sessions with 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "GAME1,") || !strings.HasPrefix(lines[1], "GAME2,") {
		t.Fatalf("expected both sessions in order, got %v", lines)
	}
}
