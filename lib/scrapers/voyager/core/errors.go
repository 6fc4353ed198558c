package core

import (
	"errors"
	"fmt"
)

var (
	// the upstream rejected the supplied credentials
	ErrUnauthorized = errors.New("authentication failed: credentials rejected")
	// reserved for upstream throttling signals
	ErrRateLimited = errors.New("rate limited by upstream")
	// a request was built from unusable input
	ErrInvalidInput = errors.New("invalid input")
)

// ErrMissingIdentifier reports an operation that needs a public id or
// a urn and received neither.
var ErrMissingIdentifier = fmt.Errorf("%w: either a public id or a urn is required", ErrInvalidInput)

// ChallengeError reports that the upstream demanded a verification
// step (2fa, captcha, security checkpoint) this client cannot perform.
type ChallengeError struct {
	Result string
}

func (e ChallengeError) Error() string {
	return fmt.Sprintf("login challenged by upstream: %s", e.Result)
}

// StatusError reports a request that failed with no classification
// beyond its status code.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Code)
}
