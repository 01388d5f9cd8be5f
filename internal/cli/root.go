package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	// A .env file is optional; ignore its absence.
	_ = godotenv.Load()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	configPath := os.Getenv("QUIZ_CONFIG")

	cmd := &cobra.Command{
		Use:           "quiz-widget",
		Short:         "Trivia quiz in your terminal, questions courtesy of OpenTriviaDB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", configPath, "path to YAML config")
	cmd.AddCommand(newPlayCmd(&configPath))
	return cmd
}
