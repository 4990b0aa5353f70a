package domain

import "errors"

var (
	// ErrUnsupportedFormat is returned when no loader or report generator is registered for a source format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrBankNotFound indicates the question bank could not be located in the backing store.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrNoPlayers is returned when starting a game before any player was added.
	ErrNoPlayers = errors.New("no players added")
	// ErrGameStarted is returned when adding players after the game has begun.
	ErrGameStarted = errors.New("game already started")
	// ErrGameNotStarted is returned when playing a turn before the game has begun.
	ErrGameNotStarted = errors.New("game not started")
	// ErrEmptyPlayerName is returned when a player name is blank.
	ErrEmptyPlayerName = errors.New("player name must not be empty")
	// ErrCategoryNotFound indicates the selected category name matches no loaded category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrQuestionUnavailable indicates the value matches no question or one already answered.
	ErrQuestionUnavailable = errors.New("question not available")
	// ErrNoActiveCategory is returned when selecting a question before a category.
	ErrNoActiveCategory = errors.New("no category selected")
	// ErrNoActiveQuestion is returned when answering before selecting a question.
	ErrNoActiveQuestion = errors.New("no question selected")
)
