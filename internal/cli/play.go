package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"trivia-game/internal/app"
	"trivia-game/internal/config"
	"trivia-game/internal/domain"
	"trivia-game/internal/event"
	"trivia-game/internal/infra/memory"
	pgloader "trivia-game/internal/infra/postgres"
	redissink "trivia-game/internal/infra/redis"
	"trivia-game/internal/loader"
	"trivia-game/internal/report"
	transport "trivia-game/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewPlayCmd builds the CLI subcommand that runs an interactive game.
func NewPlayCmd(configPath *string) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive trivia game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, source)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "question bank source (file path or pg:<bank>)")
	return cmd
}

func runPlay(ctx context.Context, configPath, source string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry := loader.DefaultRegistry()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		pg := pgloader.NewBankLoader(pool)
		registry.Register("pg", func() loader.Loader { return pg })
	}

	banks := memory.NewBankRepository(registry, config.TTLDuration(cfg.Game.BankTTL, 10*time.Minute))
	reports := report.DefaultRegistry(cfg.Game.ReportDir)

	logPath := cfg.Game.LogPath
	if logPath == "" {
		logPath = "game_event_log.csv"
	}
	observers := []event.Observer{event.NewFileLogger(logPath)}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		observers = append(observers, redissink.NewSink(client, config.TTLDuration(cfg.Redis.TTL, time.Hour)))
	}

	if cfg.Watch.Addr != "" {
		hub := transport.NewHub()
		observers = append(observers, hub)

		mux := http.NewServeMux()
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})
		mux.HandleFunc("/ws", hub.ServeWS)
		server := &http.Server{
			Addr:         cfg.Watch.Addr,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			log.Printf("spectator stream on %s", cfg.Watch.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("spectator server: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
			hub.Close()
		}()
	}

	game := app.NewGame(banks, reports, observers...)
	return runPrompt(ctx, game, source, cfg.Game.DefaultReport)
}

// runPrompt drives the engine's public operations from stdin: load, player
// setup, the turn loop, then the report offer.
func runPrompt(ctx context.Context, game *app.Game, source, defaultReport string) error {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to Trivia!")

	for {
		if source == "" {
			fmt.Println("Enter question bank to load (e.g. questions.json):")
			if !in.Scan() {
				return in.Err()
			}
			source = strings.TrimSpace(in.Text())
			if source == "" {
				fmt.Println("Source cannot be empty.")
				continue
			}
		}
		if err := game.LoadData(ctx, source); err != nil {
			fmt.Printf("Failed to load %s: %v\n", source, err)
			source = ""
			continue
		}
		if len(game.Categories()) == 0 {
			fmt.Println("No categories loaded. Please check the source and try again.")
			source = ""
			continue
		}
		break
	}

	var count int
	for {
		fmt.Println("Enter number of players (1-4):")
		if !in.Scan() {
			return in.Err()
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("Invalid number. Please enter a valid integer.")
			continue
		}
		if n < 1 || n > 4 {
			fmt.Println("Please enter a number between 1 and 4.")
			continue
		}
		count = n
		break
	}
	game.RecordPlayerCount(count)

	for i := 0; i < count; i++ {
		for {
			fmt.Printf("Enter name for player %d:\n", i+1)
			if !in.Scan() {
				return in.Err()
			}
			if _, err := game.AddPlayer(strings.TrimSpace(in.Text())); err != nil {
				fmt.Println("Name cannot be empty.")
				continue
			}
			break
		}
	}

	if err := game.Start(); err != nil {
		return err
	}

	running := true
	for running {
		player := game.CurrentPlayer()
		fmt.Println("\n------------------------------------------------")
		fmt.Printf("Current player: %s (score %d)\n", player.Name, player.Score)
		fmt.Println("------------------------------------------------")
		printBoard(game.Categories())

		if game.IsGameOver() {
			fmt.Println("\nAll questions answered! Game over.")
			break
		}

		for {
			fmt.Println("\nEnter category (or 'exit' to quit):")
			if !in.Scan() {
				return in.Err()
			}
			input := strings.TrimSpace(in.Text())
			if strings.EqualFold(input, "exit") {
				game.Exit()
				running = false
				break
			}
			if err := game.SelectCategory(input); err != nil {
				fmt.Println("Category not found.")
				continue
			}
			break
		}
		if !running {
			break
		}

		for {
			fmt.Println("Enter question value:")
			if !in.Scan() {
				return in.Err()
			}
			value, err := strconv.Atoi(strings.TrimSpace(in.Text()))
			if err != nil {
				fmt.Println("Invalid value. Please enter a number.")
				continue
			}
			q, err := game.SelectQuestion(value)
			if err != nil {
				fmt.Println("Question not available or already answered.")
				continue
			}
			fmt.Println("Question: " + q.Text)
			fmt.Println("Options:")
			for _, key := range domain.OptionKeys {
				fmt.Printf("%s: %s\n", key, q.Options[key])
			}
			break
		}

		for {
			fmt.Println("Enter your answer (A, B, C or D):")
			if !in.Scan() {
				return in.Err()
			}
			answer := strings.ToUpper(strings.TrimSpace(in.Text()))
			if len(answer) != 1 || !strings.Contains("ABCD", answer) {
				fmt.Println("Invalid answer. Please enter A, B, C or D.")
				continue
			}
			correct, err := game.AnswerQuestion(answer)
			if err != nil {
				return err
			}
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Println("Incorrect.")
			}
			break
		}
	}

	fmt.Println("\nGame over!")
	for {
		fmt.Println("Generate report? (txt/pdf/json) or 'skip':")
		if !in.Scan() {
			break
		}
		format := strings.TrimSpace(in.Text())
		if format == "" {
			format = defaultReport
		}
		if format == "" || strings.EqualFold(format, "skip") {
			break
		}
		if err := game.GenerateReport(format); err != nil {
			fmt.Printf("Could not generate report: %v\n", err)
			continue
		}
		fmt.Println("Report written.")
		break
	}

	fmt.Println("\nFinal scores:")
	for _, p := range game.Players() {
		fmt.Printf("%s: %d\n", p.Name, p.Score)
	}
	return nil
}

func printBoard(categories []*domain.Category) {
	fmt.Println("Available categories:")
	for _, c := range categories {
		fmt.Printf("%s [", c.Name)
		for i, q := range c.Questions {
			if i > 0 {
				fmt.Print(" ")
			}
			if q.Answered {
				fmt.Print("X")
			} else {
				fmt.Print(q.Value)
			}
		}
		fmt.Println("]")
	}
}
