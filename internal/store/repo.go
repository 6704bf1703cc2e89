package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	SessionID string // filter to one session ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// TurnEventData captures one completed conversation exchange.
type TurnEventData struct {
	SessionID   string
	Mode        string // "chat", "hint", "challenge", "mcq", "mcq-answer"
	UserMessage string
	BotResponse string
	Difficulty  int
}

// TurnEvent is a stored conversation turn.
type TurnEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendTurn records one completed user/bot exchange.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// QueryTurns returns turn events in sequence order.
	QueryTurns(ctx context.Context, opts QueryOpts) ([]TurnEvent, error)
}
