package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"trivia-game/internal/domain"
	"trivia-game/internal/event"
)

// JSONReport writes a structured export of the game for downstream tooling.
type JSONReport struct {
	path string
}

func NewJSONReport(path string) *JSONReport {
	return &JSONReport{path: path}
}

type gameExport struct {
	SessionID string         `json:"session_id"`
	Players   []playerExport `json:"players"`
	Turns     []turnExport   `json:"turns"`
}

type playerExport struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	FinalScore int    `json:"final_score"`
}

type turnExport struct {
	Turn       int       `json:"turn"`
	Player     string    `json:"player"`
	Category   string    `json:"category"`
	Value      int       `json:"value"`
	Answer     string    `json:"answer"`
	Result     string    `json:"result"`
	ScoreAfter int       `json:"score_after"`
	At         time.Time `json:"at"`
}

func (r *JSONReport) Generate(players []*domain.Player, events []event.GameEvent) error {
	export := gameExport{}
	if len(events) > 0 {
		export.SessionID = events[0].SessionID
	}
	for _, p := range players {
		export.Players = append(export.Players, playerExport{ID: p.ID, Name: p.Name, FinalScore: p.Score})
	}
	turn := 1
	for _, e := range events {
		if e.Activity != event.AnswerQuestion {
			continue
		}
		export.Turns = append(export.Turns, turnExport{
			Turn:       turn,
			Player:     playerName(players, e.PlayerID),
			Category:   e.Detail,
			Value:      e.QuestionValue,
			Answer:     e.AnswerGiven,
			Result:     e.Result,
			ScoreAfter: e.ScoreAfterPlay,
			At:         e.Timestamp,
		})
		turn++
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}
