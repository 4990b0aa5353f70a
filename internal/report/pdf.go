package report

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"trivia-game/internal/domain"
	"trivia-game/internal/event"
)

// PDFReport writes the game summary as a single-flow PDF document.
type PDFReport struct {
	path string
}

func NewPDFReport(path string) *PDFReport {
	return &PDFReport{path: path}
}

func (r *PDFReport) Generate(players []*domain.Player, events []event.GameEvent) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Trivia Game Report", "", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	line(pdf, "Players: "+strings.Join(names, ", "))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Gameplay Summary")
	pdf.SetFont("Helvetica", "", 11)
	turn := 1
	for _, e := range events {
		if e.Activity != event.AnswerQuestion {
			continue
		}
		name := playerName(players, e.PlayerID)
		line(pdf, fmt.Sprintf("Turn %d: %s selected %s for %d pts", turn, name, e.Detail, e.QuestionValue))
		line(pdf, fmt.Sprintf("Answer: %s - %s (+%d pts)", e.AnswerGiven, e.Result, awardedPoints(e)))
		line(pdf, fmt.Sprintf("Score after turn: %s = %d", name, e.ScoreAfterPlay))
		pdf.Ln(2)
		turn++
	}

	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Final Scores")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range players {
		line(pdf, fmt.Sprintf("%s: %d", p.Name, p.Score))
	}

	if err := pdf.OutputFileAndClose(r.path); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}

func line(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(0, 6, text, "", 1, "", false, 0, "")
}
