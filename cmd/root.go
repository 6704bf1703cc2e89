package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sokratik/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sokratik",
	Short: "Socratic Python tutor in the terminal",
	Long: "Sokratik — a conversational Socratic tutor for novice Python learners. " +
		"It guides through questions instead of answers, adapts difficulty as you go, " +
		"and can review code, explain concepts, and quiz you.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; keys may come from the environment.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOKRATIK_DB env var)")
	rootCmd.Flags().String("topic", "", "Opening topic (default: variables in Python)")
	rootCmd.Flags().Bool("structured-mcq", false, "Request schema-validated JSON for quiz generation")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SOKRATIK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("SOKRATIK_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
