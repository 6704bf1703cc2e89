package session

// State is the conversation-level state of a session.
type State int

const (
	// StateIdle: normal conversation; the next input is dispatched.
	StateIdle State = iota
	// StateAwaitingAnswer: a multiple-choice question is pending and the
	// next input is graded against it instead of being dispatched.
	StateAwaitingAnswer
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	default:
		return "unknown"
	}
}

// Reply is what the console prints for one handled input. Lines are
// printed in order as separate "Bot:" messages.
type Reply struct {
	Lines []string
	// Mode labels the turn for the event log: "chat", "hint",
	// "challenge", "mcq", "mcq-answer", "command".
	Mode string
	// Quit signals the console loop to stop.
	Quit bool
}
