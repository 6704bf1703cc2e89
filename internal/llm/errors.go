package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Typed errors classify provider failures for the retry middleware.
// None of them reach the learner: the chat facade converts every error
// into its fixed fallback reply, and the tools degrade to their own
// sentences.

// ErrRateLimit reports a 429 from the vendor API. RetryAfter, when the
// vendor supplies it, overrides the backoff schedule on extra attempts.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports structured output that failed schema
// validation, such as a generated quiz question missing its options.
// Content carries the offending JSON for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports a down or unreachable vendor API.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a reply truncated at the MaxTokens limit.
// Not retryable; the limit is fixed per request, so a retry would
// truncate again.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
