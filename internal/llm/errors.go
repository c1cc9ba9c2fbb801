package llm

import (
	"fmt"
	"time"
)

// ErrMissingCredential indicates the selected provider has no API key
// configured. Raised before any network I/O is attempted.
type ErrMissingCredential struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s API key missing: set %s", e.Provider, e.EnvVar)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
// Surfaced to the user as-is; explainthis never retries.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates the provider returned a success status
// but the body lacked usable generated text (no candidates, empty text,
// unexpected payload). Distinct from transport failures so it can be
// diagnosed separately in the event log.
type ErrMalformedResponse struct {
	Body string
	Err  error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable,
// or the request failed with a non-success status.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}
