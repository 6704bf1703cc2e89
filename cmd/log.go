package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sokratik/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect recorded session events",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-14s  %-24s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-24s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var logViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Session:   %s\n", e.SessionID)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}
		fmt.Println(sep)
		fmt.Println("Request:")
		fmt.Println(e.RequestBody)
		fmt.Println(sep)
		fmt.Println("Response:")
		fmt.Println(e.ResponseBody)
		return nil
	},
}

var logTurnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Show the recorded conversation transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		turns, err := s.EventRepo().QueryTurns(context.Background(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("query turns: %w", err)
		}

		if len(turns) == 0 {
			fmt.Println("No turns recorded.")
			return nil
		}

		for _, t := range turns {
			fmt.Printf("[%s] %s (level %d, %s)\n",
				t.Timestamp.Local().Format("2006-01-02 15:04:05"), t.Mode, t.Difficulty, t.SessionID)
			fmt.Printf("  You: %s\n", t.UserMessage)
			fmt.Printf("  Bot: %s\n\n", indentContinuations(t.BotResponse))
		}
		return nil
	},
}

// indentContinuations keeps multi-line bot replies aligned under "Bot:".
func indentContinuations(s string) string {
	return strings.ReplaceAll(s, "\n", "\n       ")
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	logListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	logListCmd.Flags().String("purpose", "", "Filter by purpose (socratic-turn, code-analysis, explanation, challenge-gen, mcq-gen)")
	logTurnsCmd.Flags().Int("limit", 50, "Maximum number of turns to show")
	logTurnsCmd.Flags().String("session", "", "Filter to one session ID")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logViewCmd)
	logCmd.AddCommand(logTurnsCmd)
}
