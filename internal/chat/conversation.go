// Package chat holds the tutoring conversation state: the append-only
// message history, the bounded difficulty level, and the current topic.
package chat

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation entry. Immutable once appended.
type Message struct {
	Role Role
	Text string
}

// Difficulty level bounds. Level 0 is foundational, 2 is open-ended.
const (
	MinLevel = 0
	MaxLevel = 2
)

// DefaultTopic is the opening learning topic.
const DefaultTopic = "variables in Python"

// Conversation owns the ordered message history, the difficulty level and
// the current topic for one tutoring session. History only grows; replay
// order is the order sent to the model.
type Conversation struct {
	messages []Message
	level    int
	topic    string
}

// NewConversation creates an empty conversation at level 0 on topic.
// An empty topic falls back to DefaultTopic.
func NewConversation(topic string) *Conversation {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Conversation{topic: topic}
}

// AddUser appends a user message.
func (c *Conversation) AddUser(text string) {
	c.messages = append(c.messages, Message{Role: RoleUser, Text: text})
}

// AddAssistant appends an assistant message.
func (c *Conversation) AddAssistant(text string) {
	c.messages = append(c.messages, Message{Role: RoleAssistant, Text: text})
}

// Messages returns a copy of the history in insertion order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the history.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Level returns the current difficulty level.
func (c *Conversation) Level() int {
	return c.level
}

// SetLevel stores the difficulty level, clamped to [MinLevel, MaxLevel].
// No caller can push the level out of range.
func (c *Conversation) SetLevel(level int) {
	c.level = clampLevel(level)
}

// Topic returns the current learning topic.
func (c *Conversation) Topic() string {
	return c.topic
}

// SetTopic updates the current learning topic.
func (c *Conversation) SetTopic(topic string) {
	c.topic = topic
}

func clampLevel(level int) int {
	return max(MinLevel, min(level, MaxLevel))
}
