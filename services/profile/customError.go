package profile

import "errors"

// ErrNotOnboarded means no profile exists yet. It is a valid state meaning
// "run onboarding", not a failure.
var ErrNotOnboarded = errors.New("user has not completed onboarding")

// ErrAlreadyOnboarded signals a second onboarding submission for a user
// that already has a profile.
var ErrAlreadyOnboarded = errors.New("user profile already exists")

// ValidationError collects the human-readable messages from a rejected
// form submission. No partial save occurs when it is returned.
type ValidationError struct {
	Messages []string
}

func (e ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	// The first message is the one surfaced to the user.
	return e.Messages[0]
}
