package event

import "time"

// ActivityType is the closed set of activity kinds a game can emit.
type ActivityType string

const (
	StartGame         ActivityType = "START_GAME"
	LoadFile          ActivityType = "LOAD_FILE"
	FileLoaded        ActivityType = "FILE_LOADED_SUCCESSFULLY"
	SelectPlayerCount ActivityType = "SELECT_PLAYER_COUNT"
	EnterPlayerName   ActivityType = "ENTER_PLAYER_NAME"
	SelectCategory    ActivityType = "SELECT_CATEGORY"
	SelectQuestion    ActivityType = "SELECT_QUESTION"
	AnswerQuestion    ActivityType = "ANSWER_QUESTION"
	ScoreUpdated      ActivityType = "SCORE_UPDATED"
	GenerateReport    ActivityType = "GENERATE_REPORT"
	GenerateEventLog  ActivityType = "GENERATE_EVENT_LOG"
	ExitGame          ActivityType = "EXIT_GAME"
)

// AllActivityTypes returns every activity kind, for observers that want the full stream.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		StartGame,
		LoadFile,
		FileLoaded,
		SelectPlayerCount,
		EnterPlayerName,
		SelectCategory,
		SelectQuestion,
		AnswerQuestion,
		ScoreUpdated,
		GenerateReport,
		GenerateEventLog,
		ExitGame,
	}
}

// GameEvent is an immutable record of one game occurrence. It carries enough
// data for both logging and reporting without re-querying the engine.
type GameEvent struct {
	SessionID      string       `json:"sessionId"`
	PlayerID       int          `json:"playerId"`
	Activity       ActivityType `json:"activity"`
	Timestamp      time.Time    `json:"timestamp"`
	Detail         string       `json:"detail"`
	QuestionValue  int          `json:"questionValue"`
	AnswerGiven    string       `json:"answerGiven,omitempty"`
	Result         string       `json:"result,omitempty"`
	ScoreAfterPlay int          `json:"scoreAfterPlay"`
}
