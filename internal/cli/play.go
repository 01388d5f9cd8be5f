package cli

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-widget/internal/app"
	"quiz-widget/internal/config"
	"quiz-widget/internal/opentdb"
	"quiz-widget/internal/quiz"
	"quiz-widget/internal/term"
)

func newPlayCmd(configPath *string) *cobra.Command {
	var (
		amount     int
		difficulty string
		category   int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Fetch a fresh question batch and play one or more rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("amount") {
				cfg.Quiz.Amount = amount
			}
			if cmd.Flags().Changed("difficulty") {
				cfg.Quiz.Difficulty = difficulty
			}
			if cmd.Flags().Changed("category") {
				cfg.Quiz.Category = category
			}
			if url := os.Getenv("QUIZ_PROVIDER_URL"); url != "" {
				cfg.Provider.BaseURL = url
			}

			return runPlay(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", opentdb.DefaultAmount, "number of questions to fetch")
	cmd.Flags().StringVar(&difficulty, "difficulty", opentdb.DefaultDifficulty, "question difficulty (easy, medium, hard)")
	cmd.Flags().IntVar(&category, "category", 0, "OpenTriviaDB category id (0 = any)")
	return cmd
}

func runPlay(ctx context.Context, cfg config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	timeout := config.TimeoutDuration(cfg.Provider.Timeout, 10*time.Second)
	client := opentdb.NewClient(&http.Client{Timeout: timeout}, cfg.Provider.BaseURL, logger)

	params := opentdb.Params{
		Amount:     cfg.Quiz.Amount,
		Difficulty: cfg.Quiz.Difficulty,
		Type:       cfg.Quiz.Type,
		Category:   cfg.Quiz.Category,
	}
	fetcher := func(ctx context.Context) ([]quiz.Question, error) {
		raw, err := client.FetchQuestions(ctx, params)
		if err != nil {
			return nil, err
		}
		return quiz.BuildQuestions(raw, nil), nil
	}

	ctrl := app.NewController(fetcher, term.NewRenderer(os.Stdout), logger)
	return term.Run(ctx, ctrl, os.Stdin, os.Stdout)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	env := os.Getenv("QUIZ_ENV")
	if env == "" {
		env = cfg.Env
	}
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
