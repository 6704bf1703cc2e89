package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokratik/internal/chat"
	"sokratik/internal/llm"
)

func newTestRouter(responses ...llm.MockResponse) (*Router, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewRouter(mock, Config{}), mock
}

func TestDispatch_CodeGoesToAnalysis(t *testing.T) {
	r, mock := newTestRouter(llm.TextResponse("Consider what happens when x is zero."))
	conv := chat.NewConversation(chat.DefaultTopic)

	res := r.Dispatch(context.Background(), "def f(x):\n    return 1/x", conv)

	assert.Equal(t, ToolAnalysis, res.Tool)
	assert.Equal(t, "Consider what happens when x is zero.", res.Text)
	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "```python\ndef f(x):")
	assert.Contains(t, req.Messages[0].Content, "Do NOT fix the code")
}

func TestDispatch_DefinitionGoesToExplanation(t *testing.T) {
	r, mock := newTestRouter(llm.TextResponse("A list is an ordered, mutable collection."))
	conv := chat.NewConversation(chat.DefaultTopic)

	res := r.Dispatch(context.Background(), "what is a list?", conv)

	assert.Equal(t, ToolExplain, res.Tool)
	req := mock.Calls[0]
	assert.InDelta(t, 0.2, req.Temperature, 1e-9)
	assert.Contains(t, req.Messages[0].Content, "Query: what is a list?")
	assert.Contains(t, req.Messages[0].Content, "Do not ask questions.")
}

func TestDispatch_UnderstandingEarnsChallenge(t *testing.T) {
	r, mock := newTestRouter(llm.TextResponse("Fill in the blank:\n```python\nx = ___\n```"))
	conv := chat.NewConversation("loops in Python")
	conv.SetLevel(2)

	res := r.Dispatch(context.Background(), "ok I understand this now", conv)

	assert.Equal(t, ToolChallenge, res.Tool)
	assert.True(t, strings.HasPrefix(res.Text, challengePreamble))
	req := mock.Calls[0]
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Contains(t, req.Messages[0].Content, "'loops in Python'")
	assert.Contains(t, req.Messages[0].Content, "an intermediate, 3-5 line code snippet challenge")
}

func TestDispatch_QuizRequestGoesToMCQ(t *testing.T) {
	r, mock := newTestRouter(llm.TextResponse(
		"Question: What is a variable?\nA. a box\nB. a loop\nCorrect Answer: A"))
	conv := chat.NewConversation(chat.DefaultTopic)

	res := r.Dispatch(context.Background(), "quiz me", conv)

	assert.Equal(t, ToolMCQ, res.Tool)
	assert.Contains(t, res.Text, "Correct Answer: A")
	req := mock.Calls[0]
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Contains(t, req.Messages[0].Content, "a very simple, foundational multiple-choice question")
}

func TestDispatch_DefaultIsSocraticWithHistory(t *testing.T) {
	r, mock := newTestRouter(llm.TextResponse("What do you think happens next?"))
	conv := chat.NewConversation(chat.DefaultTopic)
	conv.AddAssistant("Welcome!")
	conv.AddUser("variables seem confusing")

	res := r.Dispatch(context.Background(), "variables seem confusing", conv)

	assert.Equal(t, ToolSocratic, res.Tool)
	req := mock.Calls[0]
	assert.NotEmpty(t, req.System)
	assert.Contains(t, req.System, "variables seem confusing")
	assert.Len(t, req.Messages, 2)
}

func TestDispatch_ToolDegradationSentences(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"analysis", "print(x)", analysisDegraded},
		{"explanation", "what is a dict?", explainDegraded},
		{"challenge", "challenge me", challengeDegraded},
		{"mcq", "quiz me", mcqDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter() // empty queue, every call errors
			conv := chat.NewConversation(chat.DefaultTopic)
			res := r.Dispatch(context.Background(), tt.message, conv)
			assert.Equal(t, tt.want, res.Text)
		})
	}
}

func TestDispatch_SocraticDegradesToFallbackReply(t *testing.T) {
	r, _ := newTestRouter()
	conv := chat.NewConversation(chat.DefaultTopic)

	res := r.Dispatch(context.Background(), "hmm not sure", conv)

	assert.Equal(t, chat.FallbackReply, res.Text)
}

func TestGenerateMCQ_Structured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"question":"What creates a list?","options":["[]","{}","()"],"correct":"A"}`),
	})
	r := NewRouter(mock, Config{StructuredMCQ: true})

	got := r.GenerateMCQ(context.Background(), chat.DefaultTopic, 1)

	assert.Equal(t, "Question: What creates a list?\nA. []\nB. {}\nC. ()\nCorrect Answer: A", got)
	require.Equal(t, 1, mock.CallCount())
	require.NotNil(t, mock.Calls[0].Schema)
	assert.Equal(t, "multiple-choice-question", mock.Calls[0].Schema.Name)
}

func TestRouting_Heuristics(t *testing.T) {
	tests := []struct {
		message string
		code    bool
		mcq     bool
		chal    bool
		expl    bool
	}{
		{"```python\nx = 1\n```", true, false, false, false},
		{"import os", true, false, false, false},
		{"x = 1\ny = 2", true, false, false, false},
		{"quiz me please", false, true, false, false},
		{"give me a multiple choice question", false, true, false, false},
		{"I understand now", false, false, true, false},
		{"test me", false, false, true, false},
		{"what is a tuple?", false, false, false, true},
		{"Explain list comprehensions", false, false, false, true},
		{"I am not sure about this", false, false, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, looksLikeCode(tt.message), "looksLikeCode(%q)", tt.message)
		assert.Equal(t, tt.mcq, wantsMCQ(tt.message), "wantsMCQ(%q)", tt.message)
		assert.Equal(t, tt.chal, wantsChallenge(tt.message), "wantsChallenge(%q)", tt.message)
		assert.Equal(t, tt.expl, wantsExplanation(tt.message), "wantsExplanation(%q)", tt.message)
	}
}
