// Package tools holds the four remote-prompted capabilities (code
// analysis, explanation, challenge generation, MCQ generation) and the
// router that picks one for a user message. Each tool is a single static
// prompt sent to the same model; the router replaces the external
// agent-orchestration framework with the one capability the tutor needs.
package tools

import (
	"context"
	"strings"

	"sokratik/internal/chat"
	"sokratik/internal/llm"
)

// Tool identifies which capability produced a response.
type Tool string

const (
	ToolSocratic  Tool = "socratic"
	ToolAnalysis  Tool = "code-analysis"
	ToolExplain   Tool = "explanation"
	ToolChallenge Tool = "challenge"
	ToolMCQ       Tool = "mcq"
)

// Result is the outcome of dispatching one user message.
type Result struct {
	Text string
	Tool Tool
}

// Dispatcher routes a user message, with conversation context, to a tool
// or to plain Socratic questioning and returns the response text.
type Dispatcher interface {
	Dispatch(ctx context.Context, message string, conv *chat.Conversation) Result
}

// Config tunes the tool layer.
type Config struct {
	// StructuredMCQ requests JSON-schema output for MCQ generation
	// instead of the free-text format. Off by default; the free-text
	// path with the tolerant parser is the standard flow.
	StructuredMCQ bool
}

// Router implements Dispatcher with keyword heuristics: code is analyzed,
// definition questions are explained, declarations of understanding earn
// a challenge, quiz requests earn an MCQ, and everything else continues
// the Socratic conversation.
type Router struct {
	provider llm.Provider
	client   *chat.Client
	cfg      Config
}

// NewRouter creates a Router over the given provider.
func NewRouter(provider llm.Provider, cfg Config) *Router {
	return &Router{
		provider: provider,
		client:   chat.NewClient(provider),
		cfg:      cfg,
	}
}

func (r *Router) Dispatch(ctx context.Context, message string, conv *chat.Conversation) Result {
	switch {
	case looksLikeCode(message):
		return Result{Text: r.AnalyzeCode(ctx, message), Tool: ToolAnalysis}
	case wantsMCQ(message):
		return Result{Text: r.GenerateMCQ(ctx, conv.Topic(), conv.Level()), Tool: ToolMCQ}
	case wantsChallenge(message):
		return Result{Text: r.GenerateChallenge(ctx, conv.Topic(), conv.Level()), Tool: ToolChallenge}
	case wantsExplanation(message):
		return Result{Text: r.Explain(ctx, message), Tool: ToolExplain}
	default:
		return Result{Text: r.socraticTurn(ctx, message, conv), Tool: ToolSocratic}
	}
}

// socraticTurn continues the conversation in the tutor persona, sending
// the full history.
func (r *Router) socraticTurn(ctx context.Context, message string, conv *chat.Conversation) string {
	system := chat.BuildSystemPrompt(conv.Level(), false, conv.Topic(), message)
	ctx = llm.WithPurpose(ctx, "socratic-turn")
	return r.client.Send(ctx, system, conv.Messages())
}

var codeMarkers = []string{
	"```",
	"def ",
	"print(",
	"import ",
	"lambda ",
	"return ",
}

// looksLikeCode detects pasted Python without running a parser: fenced
// blocks, common keywords, or a multi-line assignment are enough.
func looksLikeCode(msg string) bool {
	for _, marker := range codeMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	if strings.Contains(msg, "\n") && strings.Contains(msg, "=") {
		return true
	}
	return false
}

var explainPrefixes = []string{
	"what is",
	"what's",
	"what does",
	"explain",
	"how does",
	"why does",
}

func wantsExplanation(msg string) bool {
	m := strings.ToLower(strings.TrimSpace(msg))
	for _, p := range explainPrefixes {
		if strings.HasPrefix(m, p) {
			return true
		}
	}
	return false
}

var challengePhrases = []string{
	"i understand",
	"i got it",
	"got it",
	"ready for challenge",
	"give me a challenge",
	"challenge me",
	"test me",
}

func wantsChallenge(msg string) bool {
	m := strings.ToLower(strings.TrimSpace(msg))
	for _, p := range challengePhrases {
		if strings.Contains(m, p) {
			return true
		}
	}
	return false
}

var mcqPhrases = []string{
	"quiz me",
	"multiple choice",
	"multiple-choice",
	"mcq",
}

func wantsMCQ(msg string) bool {
	m := strings.ToLower(strings.TrimSpace(msg))
	for _, p := range mcqPhrases {
		if strings.Contains(m, p) {
			return true
		}
	}
	return false
}
