package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokratik/internal/llm"
	"sokratik/internal/session"
	"sokratik/internal/store"
)

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sokratik.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func runConsole(t *testing.T, input string, repo store.EventRepo, responses ...llm.MockResponse) string {
	t.Helper()
	sess := session.New(llm.NewMockProvider(responses...), session.Config{})
	var out bytes.Buffer
	console := New(sess, Options{In: strings.NewReader(input), Out: &out, Repo: repo})
	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestRun_BannerAndWelcome(t *testing.T) {
	out := runConsole(t, "exit\n", nil)

	assert.Contains(t, out, "Socratic Python Tutor")
	assert.Contains(t, out, "Type 'exit' or 'quit' to end the session.")
	assert.Contains(t, out, "Hello! I'm your Socratic Python Tutor.")
	assert.Contains(t, out, "Please type '1' or '2'.")
	assert.Contains(t, out, "Goodbye! Keep coding!")
}

func TestRun_FullExchange(t *testing.T) {
	repo := openTestRepo(t)
	out := runConsole(t, "2\nwhy do we need variables\nexit\n", repo,
		llm.TextResponse("What would your program look like without them?"))

	assert.Contains(t, out, "Excellent! Let's dive deeper into variables in Python.")
	assert.Contains(t, out, "What would your program look like without them?")

	turns, err := repo.QueryTurns(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, turns, 3) // menu choice, chat turn, exit
	assert.Equal(t, "chat", turns[1].Mode)
	assert.Equal(t, "why do we need variables", turns[1].UserMessage)
	assert.Contains(t, turns[1].BotResponse, "What would your program look like")
	assert.NotEmpty(t, turns[1].SessionID)
}

func TestRun_EndsOnEOF(t *testing.T) {
	// No exit command; the loop must stop when input runs out.
	out := runConsole(t, "2\n", nil)
	assert.Contains(t, out, "What have you learned so far")
}

func TestRun_NilRepoDisablesLogging(t *testing.T) {
	out := runConsole(t, "exit\n", nil)
	assert.NotContains(t, out, "failed to record turn")
}
