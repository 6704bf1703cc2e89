// Package session drives one tutoring conversation: the opening menu, the
// command vocabulary, dispatching normal turns, and the pending-question
// state for grading multiple-choice answers.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sokratik/internal/chat"
	"sokratik/internal/llm"
	"sokratik/internal/mcq"
	"sokratik/internal/tools"
)

const goodbye = "Goodbye! Keep coding!"

const menuPrompt = "Would you like to:\n" +
	"1. Test your knowledge on variables in Python?\n" +
	"2. Learn more about variables in Python?\n" +
	"Please type '1' or '2'."

// Config tunes a session.
type Config struct {
	// Topic is the opening topic. Defaults to chat.DefaultTopic.
	Topic string
	// Timeout bounds each model dispatch. Defaults to 30s.
	Timeout time.Duration
	// StructuredMCQ is passed through to the tool layer.
	StructuredMCQ bool
}

// Session holds the state of one tutoring conversation. Synchronous: one
// input is fully handled, including its single provider call, before the
// next is read.
type Session struct {
	ID string

	conv       *chat.Conversation
	dispatcher tools.Dispatcher
	client     *chat.Client
	heuristic  chat.Heuristic
	timeout    time.Duration

	state    State
	pending  *mcq.Record
	menuDone bool
}

// New creates a session over the given provider.
func New(provider llm.Provider, cfg Config) *Session {
	topic := cfg.Topic
	if topic == "" {
		topic = chat.DefaultTopic
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Session{
		ID:         uuid.NewString(),
		conv:       chat.NewConversation(topic),
		dispatcher: tools.NewRouter(provider, tools.Config{StructuredMCQ: cfg.StructuredMCQ}),
		client:     chat.NewClient(provider),
		heuristic:  chat.DefaultHeuristic(),
		timeout:    timeout,
	}
}

// State returns the current conversation state.
func (s *Session) State() State { return s.state }

// Level returns the current difficulty level.
func (s *Session) Level() int { return s.conv.Level() }

// Topic returns the current topic.
func (s *Session) Topic() string { return s.conv.Topic() }

// History returns a copy of the conversation transcript.
func (s *Session) History() []chat.Message { return s.conv.Messages() }

// Welcome returns the opening bot messages and records the greeting in
// the history so the model sees it on the first real turn.
func (s *Session) Welcome() Reply {
	welcome := fmt.Sprintf("Hello! I'm your Socratic Python Tutor. Today, we can start with '%s'.", s.conv.Topic())
	s.conv.AddAssistant(welcome)
	return Reply{Lines: []string{welcome, menuPrompt}, Mode: "command"}
}

// HandleInput processes one line of user input and returns what to print.
// Each completed conversational turn appends exactly one user and one
// assistant message to the history.
func (s *Session) HandleInput(ctx context.Context, input string) Reply {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)

	if lower == "exit" || lower == "quit" {
		return Reply{Lines: []string{goodbye}, Mode: "command", Quit: true}
	}

	if input == "" {
		return Reply{Lines: []string{"Please type something."}, Mode: "command"}
	}

	if !s.menuDone {
		return s.handleMenuChoice(ctx, input)
	}

	if s.state == StateAwaitingAnswer {
		return s.gradeAnswer(input)
	}

	switch lower {
	case "hint":
		return s.handleHint(ctx)
	case "easier":
		return s.adjustLevel(-1, "basic Python data types",
			"Okay, I've adjusted the difficulty to easier (Level: %d). How about we review the basics of Python data types?")
	case "harder":
		return s.adjustLevel(+1, "mutable and immutable data types",
			"Great! I've adjusted the difficulty to harder (Level: %d). Can you explain the difference between mutable and immutable data types in Python?")
	default:
		return s.handleTurn(ctx, input)
	}
}

// handleMenuChoice resolves the 1/2 opening menu. "1" jumps straight to a
// challenge; "2" opens with a Socratic question.
func (s *Session) handleMenuChoice(ctx context.Context, input string) Reply {
	switch input {
	case "1":
		s.menuDone = true
		s.conv.AddUser("user chose to test knowledge")

		ctx, cancel := s.dispatchContext(ctx, "")
		defer cancel()
		challenge := s.dispatcher.Dispatch(ctx, "give me a challenge", s.conv).Text
		s.conv.AddAssistant(challenge)

		return Reply{
			Lines: []string{
				fmt.Sprintf("Great! Let's test your knowledge on %s.", s.conv.Topic()),
				challenge,
			},
			Mode: "challenge",
		}
	case "2":
		s.menuDone = true
		s.conv.AddUser("user chose to learn more")
		opening := fmt.Sprintf("What have you learned so far, or what are you curious about regarding %s?", s.conv.Topic())
		s.conv.AddAssistant(opening)

		return Reply{
			Lines: []string{
				fmt.Sprintf("Excellent! Let's dive deeper into %s.", s.conv.Topic()),
				opening,
			},
			Mode: "chat",
		}
	default:
		return Reply{
			Lines: []string{"Please choose '1' to test your knowledge or '2' to learn more."},
			Mode:  "command",
		}
	}
}

// handleHint sends a hint-flagged prompt. Hint turns never move the
// difficulty level.
func (s *Session) handleHint(ctx context.Context) Reply {
	s.conv.AddUser("hint requested")

	ctx, cancel := s.dispatchContext(ctx, "socratic-turn")
	defer cancel()

	system := chat.BuildSystemPrompt(s.conv.Level(), true, s.conv.Topic(), "I need a hint for the current topic.")
	reply := s.client.Send(ctx, system, s.conv.Messages())
	s.conv.AddAssistant(reply)

	return Reply{
		Lines: []string{"Let me give you a small hint...", reply},
		Mode:  "hint",
	}
}

// adjustLevel applies a manual difficulty nudge and switches the topic,
// with a canned reply so no model call is spent on a command.
func (s *Session) adjustLevel(delta int, topic, format string) Reply {
	s.conv.SetLevel(s.conv.Level() + delta)
	text := fmt.Sprintf(format, s.conv.Level())

	if delta < 0 {
		s.conv.AddUser("easier")
	} else {
		s.conv.AddUser("harder")
	}
	s.conv.AddAssistant(text)
	s.conv.SetTopic(topic)

	return Reply{Lines: []string{text}, Mode: "command"}
}

// handleTurn dispatches a normal message, adjusts the difficulty from the
// reply length, and arms answer grading when the reply is a parseable
// multiple-choice question.
func (s *Session) handleTurn(ctx context.Context, input string) Reply {
	s.conv.AddUser(input)

	ctx, cancel := s.dispatchContext(ctx, "")
	defer cancel()

	res := s.dispatcher.Dispatch(ctx, input, s.conv)
	s.conv.AddAssistant(res.Text)
	s.heuristic.Adjust(s.conv, res.Text, false)

	if rec, err := mcq.Parse(res.Text); err == nil {
		s.pending = rec
		s.state = StateAwaitingAnswer
	}

	return Reply{Lines: []string{res.Text}, Mode: turnMode(res.Tool)}
}

// gradeAnswer grades the input against the pending question. Correct or
// not, the question is consumed and the session returns to idle.
func (s *Session) gradeAnswer(input string) Reply {
	rec := s.pending
	s.pending = nil
	s.state = StateIdle

	s.conv.AddUser(input)

	var text string
	if rec.Grade(input) {
		text = "Correct! Great job. Let's build on that."
		chat.NudgeUp(s.conv)
	} else {
		text = fmt.Sprintf("Not quite. The correct answer was %s (%s). Let's take another look at this together.",
			rec.Correct, rec.CorrectText())
		chat.NudgeDown(s.conv)
	}
	s.conv.AddAssistant(text)

	return Reply{Lines: []string{text}, Mode: "mcq-answer"}
}

// dispatchContext bounds a model call and stamps it for event logging.
func (s *Session) dispatchContext(ctx context.Context, purpose string) (context.Context, context.CancelFunc) {
	ctx = llm.WithSession(ctx, s.ID)
	if purpose != "" {
		ctx = llm.WithPurpose(ctx, purpose)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func turnMode(tool tools.Tool) string {
	switch tool {
	case tools.ToolChallenge:
		return "challenge"
	case tools.ToolMCQ:
		return "mcq"
	default:
		return "chat"
	}
}
