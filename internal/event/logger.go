package event

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// FileLogger appends one comma-separated line per event to a log file. The
// file is created lazily, opened in append mode per write, and survives
// across sessions until externally cleared.
type FileLogger struct {
	path string
}

func NewFileLogger(path string) *FileLogger {
	return &FileLogger{path: path}
}

// HandleEvent writes the event as a single line:
// sessionID,playerID,activity,timestamp,detail,value,answer,result,score.
// Literal commas in free-text fields are replaced so they cannot break the format.
func (l *FileLogger) HandleEvent(event GameEvent) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	line := strings.Join([]string{
		event.SessionID,
		strconv.Itoa(event.PlayerID),
		string(event.Activity),
		event.Timestamp.Format(time.RFC3339),
		escapeCommas(event.Detail),
		strconv.Itoa(event.QuestionValue),
		escapeCommas(event.AnswerGiven),
		event.Result,
		strconv.Itoa(event.ScoreAfterPlay),
	}, ",")

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("write event log: %w", err)
	}
	return nil
}

func escapeCommas(s string) string {
	return strings.ReplaceAll(s, ",", ";")
}
