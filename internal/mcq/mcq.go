// Package mcq extracts structured multiple-choice questions from the
// loosely formatted text an LLM produces, and grades answers against them.
package mcq

import (
	"encoding/json"
	"fmt"
	"strings"

	"sokratik/internal/llm"
)

// Option is one labeled answer choice.
type Option struct {
	Label string // "A".."D"
	Text  string
}

// Record is a parsed multiple-choice question. Transient: it exists only
// between being parsed from one assistant message and grading the next
// user message.
type Record struct {
	Question string
	Options  []Option
	Correct  string // label of the correct option
}

// CorrectIndex returns the zero-based index of the correct option,
// or -1 if the label matches no option.
func (r *Record) CorrectIndex() int {
	for i, o := range r.Options {
		if o.Label == r.Correct {
			return i
		}
	}
	return -1
}

// CorrectText returns the text of the correct option.
func (r *Record) CorrectText() string {
	if i := r.CorrectIndex(); i >= 0 {
		return r.Options[i].Text
	}
	return ""
}

// Grade reports whether answer names the correct option. It accepts a
// bare label in any case with trailing punctuation ("b", "B.", "B)") or
// the full option text.
func (r *Record) Grade(answer string) bool {
	a := strings.TrimSpace(answer)
	if a == "" {
		return false
	}

	label := strings.ToUpper(strings.TrimRight(a, ".) "))
	if len(label) == 1 && label == r.Correct {
		return true
	}

	return strings.EqualFold(a, r.CorrectText())
}

// Render formats the record back into the canonical question text
// ("Question:" line plus labeled options), without the answer line.
// Render output plus a "Correct Answer: X" line parses back losslessly.
func (r *Record) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s", r.Question)
	for _, o := range r.Options {
		fmt.Fprintf(&b, "\n%s. %s", o.Label, o.Text)
	}
	return b.String()
}

// Schema describes the structured-output form of a Record for providers
// generating JSON instead of the free-text format.
func Schema() *llm.Schema {
	return &llm.Schema{
		Name:        "multiple-choice-question",
		Description: "A multiple-choice question with one correct answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
					"maxItems": 4,
				},
				"correct": map[string]any{
					"type": "string",
					"enum": []any{"A", "B", "C", "D"},
				},
			},
			"required": []any{"question", "options", "correct"},
		},
	}
}

// FromJSON decodes a structured-output response into a Record.
func FromJSON(raw []byte) (*Record, error) {
	var payload struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Correct  string   `json:"correct"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode question JSON: %w", err)
	}

	rec := &Record{Question: payload.Question, Correct: payload.Correct}
	for i, text := range payload.Options {
		rec.Options = append(rec.Options, Option{Label: string(rune('A' + i)), Text: text})
	}

	if rec.Question == "" || len(rec.Options) < 2 || rec.CorrectIndex() < 0 {
		return nil, ErrUnparseable
	}
	return rec, nil
}
