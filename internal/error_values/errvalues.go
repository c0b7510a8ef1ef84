package errorvalues

import "errors"

var (
	ErrInvalidHabitName    = errors.New("habit name is empty")
	ErrInvalidCategory     = errors.New("unknown habit category")
	ErrInvalidReminderTime = errors.New("reminder time must be HH:mm")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTaskTitle    = errors.New("task title is empty")

	ErrNoActiveIdentity = errors.New("no active identity")
	ErrStaleSession     = errors.New("identity changed while request was in flight")
	ErrPersistFailed    = errors.New("changes kept in memory but not persisted")
	ErrSessionClosed    = errors.New("session is closed")

	ErrMalformedRecord = errors.New("stored record is malformed")
	ErrUnknownDriver   = errors.New("unknown store driver")

	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("token signing secret is empty")
	ErrSessionEnded  = errors.New("token identity is not the active session")
	ErrSignInAborted = errors.New("sign-in did not complete")

	ErrAdviceUnavailable = errors.New("advice generator unavailable")
)
