package mcq

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnparseable reports that text did not contain a recognizable
// multiple-choice question. Callers fall back to treating the text as a
// plain assistant message; a partial Record is never returned.
var ErrUnparseable = errors.New("text is not a multiple-choice question")

var (
	// "A. text", "B) text", "c . text" — label, punctuation, body.
	optionRe = regexp.MustCompile(`^\s*([A-Da-d])\s*[.)]\s*(.+)$`)
	// "Question: ..." or the terser "Q: ...".
	questionRe = regexp.MustCompile(`(?i)^\s*(?:question|q)\s*:\s*(.+)$`)
	// "Correct Answer: B" or "Answer: B", with optional trailing noise.
	answerRe = regexp.MustCompile(`(?i)^\s*(?:correct\s+)?answer\s*:\s*([A-Da-d])\b`)
)

// Parse extracts a Record from free-text model output. It tolerates extra
// whitespace and varying label punctuation, since the producer is an LLM,
// not a schema. Returns ErrUnparseable unless a question line, at least
// two options, and a correct label matching one of the options are all
// found.
func Parse(text string) (*Record, error) {
	rec := &Record{}
	seen := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := answerRe.FindStringSubmatch(line); m != nil {
			rec.Correct = strings.ToUpper(m[1])
			continue
		}
		if m := questionRe.FindStringSubmatch(line); m != nil && rec.Question == "" {
			rec.Question = strings.TrimSpace(m[1])
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil {
			label := strings.ToUpper(m[1])
			if seen[label] {
				continue
			}
			seen[label] = true
			rec.Options = append(rec.Options, Option{Label: label, Text: strings.TrimSpace(m[2])})
		}
	}

	if rec.Question == "" || len(rec.Options) < 2 || rec.Correct == "" {
		return nil, ErrUnparseable
	}
	if rec.CorrectIndex() < 0 {
		return nil, ErrUnparseable
	}

	return rec, nil
}
