package report

import (
	"fmt"
	"os"
	"strings"

	"trivia-game/internal/domain"
	"trivia-game/internal/event"
)

// TextReport writes the plain-text game summary.
type TextReport struct {
	path string
}

func NewTextReport(path string) *TextReport {
	return &TextReport{path: path}
}

func (r *TextReport) Generate(players []*domain.Player, events []event.GameEvent) error {
	var b strings.Builder
	b.WriteString("TRIVIA GAME REPORT\n")
	b.WriteString("==================\n\n")

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	fmt.Fprintf(&b, "Players: %s\n\n", strings.Join(names, ", "))

	b.WriteString("Gameplay Summary:\n")
	b.WriteString("-----------------\n")
	turn := 1
	for _, e := range events {
		if e.Activity != event.AnswerQuestion {
			continue
		}
		name := playerName(players, e.PlayerID)
		fmt.Fprintf(&b, "Turn %d: %s selected %s for %d pts\n", turn, name, e.Detail, e.QuestionValue)
		fmt.Fprintf(&b, "Answer: %s - %s (+%d pts)\n", e.AnswerGiven, e.Result, awardedPoints(e))
		fmt.Fprintf(&b, "Score after turn: %s = %d\n\n", name, e.ScoreAfterPlay)
		turn++
	}

	b.WriteString("Final Scores:\n")
	for _, p := range players {
		fmt.Fprintf(&b, "%s: %d\n", p.Name, p.Score)
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}
