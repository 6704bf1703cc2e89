package chat

import "testing"

func TestConversation_AppendOnly(t *testing.T) {
	c := NewConversation("")

	c.AddUser("what is a list?")
	c.AddAssistant("What do you think a list holds?")

	if c.Len() != 2 {
		t.Fatalf("expected 2 messages, got %d", c.Len())
	}

	msgs := c.Messages()
	if msgs[0].Role != RoleUser || msgs[0].Text != "what is a list?" {
		t.Fatalf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Role != RoleAssistant {
		t.Fatalf("unexpected second message: %+v", msgs[1])
	}

	// Mutating the returned slice must not touch the conversation.
	msgs[0].Text = "tampered"
	if c.Messages()[0].Text != "what is a list?" {
		t.Fatal("Messages() must return a copy")
	}
}

func TestConversation_DefaultTopic(t *testing.T) {
	c := NewConversation("")
	if c.Topic() != DefaultTopic {
		t.Fatalf("expected default topic, got %q", c.Topic())
	}

	c.SetTopic("mutable and immutable data types")
	if c.Topic() != "mutable and immutable data types" {
		t.Fatalf("unexpected topic: %q", c.Topic())
	}
}

func TestConversation_LevelClamped(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"far below range", -5, 0},
		{"just below range", -1, 0},
		{"low bound", 0, 0},
		{"mid", 1, 1},
		{"high bound", 2, 2},
		{"just above range", 3, 2},
		{"far above range", 99, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConversation("")
			c.SetLevel(tt.input)
			if c.Level() != tt.want {
				t.Fatalf("SetLevel(%d): got %d, want %d", tt.input, c.Level(), tt.want)
			}
		})
	}
}
