package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"trivia-game/internal/domain"
	"trivia-game/internal/event"
	"trivia-game/internal/report"
)

// BankRepository loads question banks keyed by a source identifier.
type BankRepository interface {
	LoadBank(ctx context.Context, source string) ([]*domain.Category, error)
}

// Game is the turn-based trivia session engine. It owns the player list, the
// loaded categories, the event bus, the in-memory history and the transient
// selection state. It is single-threaded: callers serialize access.
type Game struct {
	sessionID string
	now       func() time.Time

	bus     *event.Bus
	history *event.History
	banks   BankRepository
	reports *report.Registry

	players    []*domain.Player
	categories []*domain.Category

	started            bool
	currentPlayerIndex int
	selectedCategory   *domain.Category
	selectedQuestion   *domain.Question
}

// NewGame builds a game session. The history observer and every extra
// observer (durable log, sinks, spectators) are subscribed to the full
// activity kind set so each sees every event type.
func NewGame(banks BankRepository, reports *report.Registry, observers ...event.Observer) *Game {
	return NewGameWithClock(banks, reports, time.Now, observers...)
}

// NewGameWithClock is test-only for deterministic timestamps and session ids.
func NewGameWithClock(banks BankRepository, reports *report.Registry, now func() time.Time, observers ...event.Observer) *Game {
	g := &Game{
		sessionID: "GAME" + strconv.FormatInt(now().UnixMilli(), 10),
		now:       now,
		bus:       event.NewBus(),
		history:   event.NewHistory(),
		banks:     banks,
		reports:   reports,
	}
	g.bus.SubscribeAll(g.history)
	for _, observer := range observers {
		g.bus.SubscribeAll(observer)
	}
	return g
}

func (g *Game) SessionID() string { return g.sessionID }

func (g *Game) Players() []*domain.Player { return g.players }

func (g *Game) Categories() []*domain.Category { return g.categories }

// History returns every event published so far, in publish order.
func (g *Game) History() []event.GameEvent { return g.history.Events() }

// CurrentPlayer returns the player whose turn it is, or nil before Start.
func (g *Game) CurrentPlayer() *domain.Player {
	if !g.started || len(g.players) == 0 {
		return nil
	}
	return g.players[g.currentPlayerIndex]
}

// LoadData obtains categories for the source and replaces the session's
// category list. On failure the list is left unchanged so the caller can retry.
func (g *Game) LoadData(ctx context.Context, source string) error {
	g.publish(event.LoadFile, 0, "Loading file: "+source, 0)
	categories, err := g.banks.LoadBank(ctx, source)
	if err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}
	g.categories = categories
	g.publish(event.FileLoaded, 0, fmt.Sprintf("Loaded %d categories", len(categories)), 0)
	return nil
}

// AddPlayer registers a player before the game starts, assigning the next
// sequential 1-based id.
func (g *Game) AddPlayer(name string) (*domain.Player, error) {
	if g.started {
		return nil, domain.ErrGameStarted
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyPlayerName
	}
	player := &domain.Player{ID: len(g.players) + 1, Name: name}
	g.players = append(g.players, player)
	g.publish(event.EnterPlayerName, player.ID, "Added player: "+name, 0)
	return player, nil
}

// RecordPlayerCount notes the chosen player count before names are collected.
func (g *Game) RecordPlayerCount(count int) {
	g.publish(event.SelectPlayerCount, 0, fmt.Sprintf("Selected %d players", count), count)
}

// Start begins the game with the first-added player as current.
func (g *Game) Start() error {
	if len(g.players) == 0 {
		return domain.ErrNoPlayers
	}
	g.started = true
	g.currentPlayerIndex = 0
	g.publish(event.StartGame, 0, "Game started", 0)
	return nil
}

// SelectCategory records the active category by case-insensitive exact name
// match. No event is published and no state changes on a miss.
func (g *Game) SelectCategory(name string) error {
	if !g.started {
		return domain.ErrGameNotStarted
	}
	for _, c := range g.categories {
		if strings.EqualFold(c.Name, name) {
			g.selectedCategory = c
			g.publish(event.SelectCategory, g.currentPlayerID(), c.Name, 0)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

// SelectQuestion records the active question by exact point value within the
// active category. Answered or absent values are unavailable.
func (g *Game) SelectQuestion(value int) (*domain.Question, error) {
	if !g.started {
		return nil, domain.ErrGameNotStarted
	}
	if g.selectedCategory == nil {
		return nil, domain.ErrNoActiveCategory
	}
	q := g.selectedCategory.Question(value)
	if q == nil || q.Answered {
		return nil, domain.ErrQuestionUnavailable
	}
	g.selectedQuestion = q
	g.publish(event.SelectQuestion, g.currentPlayerID(), g.selectedCategory.Name, value)
	return q, nil
}

// AnswerQuestion scores the submitted key against the active question and
// advances the turn. Correct answers add the question's value; incorrect
// answers leave the score unchanged. The question is marked answered either
// way, and the answer and score events both carry the score after this turn.
func (g *Game) AnswerQuestion(answer string) (bool, error) {
	if g.selectedQuestion == nil {
		return false, domain.ErrNoActiveQuestion
	}

	q := g.selectedQuestion
	player := g.players[g.currentPlayerIndex]
	correct := q.CheckAnswer(answer)
	result := "Incorrect"
	if correct {
		result = "Correct"
		player.AddPoints(q.Value)
	}
	q.Answered = true

	categoryName := g.selectedCategory.Name
	g.bus.Publish(event.AnswerQuestion, g.newEvent(event.AnswerQuestion, player.ID, categoryName, q.Value, answer, result, player.Score))
	g.bus.Publish(event.ScoreUpdated, g.newEvent(event.ScoreUpdated, player.ID, "Score updated", q.Value, "", "", player.Score))

	g.currentPlayerIndex = (g.currentPlayerIndex + 1) % len(g.players)
	g.selectedCategory = nil
	g.selectedQuestion = nil
	return correct, nil
}

// IsGameOver reports whether no unanswered question remains in any category.
func (g *Game) IsGameOver() bool {
	for _, c := range g.categories {
		for _, q := range c.Questions {
			if !q.Answered {
				return false
			}
		}
	}
	return true
}

// GenerateReport renders the post-game summary in the requested format,
// passing the player list and the full event history. An unsupported format
// publishes nothing.
func (g *Game) GenerateReport(format string) error {
	generator, ok := g.reports.For(format)
	if !ok {
		return domain.ErrUnsupportedFormat
	}
	if err := generator.Generate(g.players, g.history.Events()); err != nil {
		return fmt.Errorf("generate %s report: %w", format, err)
	}
	g.publish(event.GenerateReport, 0, "Generated "+strings.ToUpper(format)+" report", 0)
	return nil
}

// Exit records a request to leave before the board is exhausted.
func (g *Game) Exit() {
	g.publish(event.ExitGame, g.currentPlayerID(), "Game exited", 0)
}

func (g *Game) currentPlayerID() int {
	if player := g.CurrentPlayer(); player != nil {
		return player.ID
	}
	return 0
}

func (g *Game) publish(kind event.ActivityType, playerID int, detail string, value int) {
	g.bus.Publish(kind, g.newEvent(kind, playerID, detail, value, "", "", 0))
}

func (g *Game) newEvent(kind event.ActivityType, playerID int, detail string, value int, answer, result string, score int) event.GameEvent {
	return event.GameEvent{
		SessionID:      g.sessionID,
		PlayerID:       playerID,
		Activity:       kind,
		Timestamp:      g.now(),
		Detail:         detail,
		QuestionValue:  value,
		AnswerGiven:    answer,
		Result:         result,
		ScoreAfterPlay: score,
	}
}
