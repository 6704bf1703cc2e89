package tools

import (
	"context"
	"fmt"

	"sokratik/internal/llm"
)

const challengeDegraded = "Could not generate a challenge at this moment."

const challengeTemperature = 0.7

const challengePreamble = "Here's a fill-in-the-blanks challenge for you based on our topic:\n\n"

var challengeDifficulty = map[int]string{
	0: "a very simple, single-line conceptual fill-in-the-blank",
	1: "a basic, 2-3 line code snippet challenge focusing on core syntax or a single concept",
	2: "an intermediate, 3-5 line code snippet challenge involving a few interconnected concepts or common patterns",
}

// GenerateChallenge produces a fill-in-the-blanks snippet for the current
// topic, scaled to the difficulty level. The static preamble marks the
// result as a challenge in the transcript.
func (r *Router) GenerateChallenge(ctx context.Context, topic string, level int) string {
	difficulty, ok := challengeDifficulty[level]
	if !ok {
		difficulty = "basic"
	}

	prompt := fmt.Sprintf(
		"You are a Python programming challenge generator. Create %s "+
			"fill-in-the-blanks Python code snippet related to the topic: '%s'. "+
			"The challenge should be clear, concise, and directly relevant to the topic and difficulty level. "+
			"Ensure there is only ONE correct answer for each blank. "+
			"Mark blanks clearly using '___' (three underscores). "+
			"Provide a brief, clear instruction for the user on what to fill in. "+
			"Do NOT provide the answers or explanations after the challenge. "+
			"Example format:\n"+
			"Fill in the blanks to define a variable and print it:\n"+
			"```python\n"+
			"my_number = ___\n"+
			"print(my_number___)\n"+
			"```"+
			"\nNow, generate the challenge for the user on the topic '%s' at a %s level.",
		difficulty, topic, topic, difficulty,
	)

	ctx = llm.WithPurpose(ctx, "challenge-gen")
	text := r.callTool(ctx, prompt, challengeTemperature, challengeDegraded)
	if text == challengeDegraded {
		return text
	}
	return challengePreamble + text
}
