package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrHabitNotFound   = errors.New("habit doesn't exists")
	ErrSubtaskNotFound = errors.New("subtask doesn't exists")
	ErrCheckExist      = errors.New("check-in record already exists")

	ErrAlreadyCompleted  = errors.New("already completed today")
	ErrInsufficientFunds = errors.New("insufficient coins")

	// Degradations: never abort the owning operation.
	ErrStorageFailure               = errors.New("storage failure")
	ErrContentGenerationUnavailable = errors.New("content generation unavailable")
	ErrMissingAPIKey                = fmt.Errorf("%w: missing api key", ErrContentGenerationUnavailable)
)

// IsNotFound reports whether err carries one of the NotFound errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrHabitNotFound) ||
		errors.Is(err, ErrSubtaskNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
