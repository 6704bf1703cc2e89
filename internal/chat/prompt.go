package chat

import (
	"fmt"
	"strings"
)

// Tone fragments keyed by difficulty level. Exactly one appears in every
// system prompt; unrecognized levels get the generic fallback rather than
// an error.
const (
	toneFoundational = "Keep your questions simple, foundational, and guide the user gently. " +
		"Break down complex ideas into smaller, manageable parts."
	toneModerate = "Ask slightly more challenging questions, prompting deeper thought but still offering clear pathways. " +
		"Use follow-up questions to probe understanding and connect concepts."
	toneOpenEnded = "Pose challenging, open-ended questions that require more critical thinking and problem-solving. " +
		"Encourage independent research or experimentation. Focus on nuanced understanding."
	toneFallback = "Be a helpful Socratic tutor."
)

const hintFragment = "The user has explicitly asked for a hint. Provide a subtle clue or a guiding question that helps " +
	"them move forward without giving away the direct answer. Ensure it's concise."

const personaPreamble = "You are a Socratic Python programming tutor for novice learners. " +
	"Your primary goal is to guide the user to discover solutions and understand concepts through questioning, " +
	"aiming for efficient learning and quick grasp of concepts. " +
	"Do not provide direct answers or code solutions directly. " +
	"Always ask a follow-up question unless the user explicitly requests to exit."

// BuildSystemPrompt assembles the system instruction for one turn.
// Pure and total: the same inputs always produce the same string, and any
// level outside [MinLevel, MaxLevel] selects the generic tone fragment.
func BuildSystemPrompt(level int, hintRequested bool, topic, userMessage string) string {
	var b strings.Builder

	b.WriteString(personaPreamble)
	if topic != "" {
		fmt.Fprintf(&b, " The current topic is: %s.", topic)
	}

	b.WriteString(" ")
	b.WriteString(toneForLevel(level))

	if hintRequested {
		b.WriteString(" ")
		b.WriteString(hintFragment)
	}

	fmt.Fprintf(&b, " The user's latest message is: %s", userMessage)

	return b.String()
}

func toneForLevel(level int) string {
	switch level {
	case 0:
		return toneFoundational
	case 1:
		return toneModerate
	case 2:
		return toneOpenEnded
	default:
		return toneFallback
	}
}
