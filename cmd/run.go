package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sokratik/internal/app"
	"sokratik/internal/llm"
	"sokratik/internal/session"
	"sokratik/internal/store"
)

// runChat opens the store, builds the provider, and starts the console loop.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	topic, _ := cmd.Flags().GetString("topic")
	structured, _ := cmd.Flags().GetBool("structured-mcq")

	sess := session.New(provider, session.Config{
		Topic:         topic,
		StructuredMCQ: structured,
	})

	console := app.New(sess, app.Options{
		In:   os.Stdin,
		Out:  os.Stdout,
		Repo: eventRepo,
	})
	return console.Run(ctx)
}
