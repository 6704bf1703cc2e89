package tools

import (
	"context"
	"fmt"

	"sokratik/internal/llm"
	"sokratik/internal/mcq"
)

const mcqDegraded = "Could not generate a multiple-choice question at this moment."

const mcqTemperature = 0.7

var mcqDifficulty = map[int]string{
	0: "a very simple, foundational multiple-choice question",
	1: "a basic multiple-choice question testing understanding of a core concept",
	2: "an intermediate multiple-choice question requiring a bit more thought or application",
}

// GenerateMCQ produces a multiple-choice question for the current topic.
// The free-text format ("Question:", "A."-"D.", "Correct Answer: X") is the
// contract the parser in package mcq understands; with StructuredMCQ set
// the provider is asked for schema-validated JSON and the record is
// rendered back into the same text format.
func (r *Router) GenerateMCQ(ctx context.Context, topic string, level int) string {
	difficulty, ok := mcqDifficulty[level]
	if !ok {
		difficulty = "basic"
	}

	ctx = llm.WithPurpose(ctx, "mcq-gen")

	if r.cfg.StructuredMCQ {
		return r.generateMCQStructured(ctx, topic, difficulty)
	}

	prompt := fmt.Sprintf(
		"You are a Python programming MCQ generator. Create %s "+
			"multiple-choice question related to the topic: '%s'. "+
			"The question should be clear, concise, and have only ONE correct answer. "+
			"Provide 3-4 distinct options labeled A, B, C, D. "+
			"Crucially, include the correct answer on a separate line at the very end in the format 'Correct Answer: [A/B/C/D]'. "+
			"Do NOT include any introductory or concluding remarks beyond the question and options."+
			"\n\nExample Output Format:\n"+
			"Question: What is Python primarily known for?\n"+
			"A. Mobile App Development\n"+
			"B. Web Scraping\n"+
			"C. Data Analysis\n"+
			"D. All of the above\n"+
			"Correct Answer: D"+
			"\n\nNow, generate the MCQ for the user on the topic '%s' at a %s level.",
		difficulty, topic, topic, difficulty,
	)

	return r.callTool(ctx, prompt, mcqTemperature, mcqDegraded)
}

// generateMCQStructured asks for JSON conforming to mcq.Schema and renders
// the decoded record into the canonical text format so the downstream
// parse-and-grade flow stays identical.
func (r *Router) generateMCQStructured(ctx context.Context, topic, difficulty string) string {
	prompt := fmt.Sprintf(
		"Create %s multiple-choice question related to the Python topic: '%s'. "+
			"The question must have only ONE correct answer and 3-4 distinct options.",
		difficulty, topic,
	)

	resp, err := r.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      mcq.Schema(),
		MaxTokens:   1024,
		Temperature: mcqTemperature,
	})
	if err != nil {
		return mcqDegraded
	}

	rec, err := mcq.FromJSON(resp.Content)
	if err != nil {
		return mcqDegraded
	}

	return rec.Render() + "\nCorrect Answer: " + rec.Correct
}
