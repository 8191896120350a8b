package intent

import "errors"

// Pipeline-fatal errors. Anything else that goes wrong during a single
// segment's processing is captured in that segment's Outcome instead.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrNoIntents    = errors.New("no intents found in multi-intent data")
	ErrUserNotFound = errors.New("user not found")
)
