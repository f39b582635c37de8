package client

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateScore is the conflict signal: a score already exists
	// for the submitted (player, game, date) key.
	ErrDuplicateScore = errors.New("score already exists for this player, game, and date")

	// ErrNoData marks an empty reporting period, distinct from a hard
	// failure; it should render as "no data", not as an error banner.
	ErrNoData = errors.New("no data for this period")

	// ErrInvalidPassword is returned when the shared site password is
	// rejected.
	ErrInvalidPassword = errors.New("invalid password")
)

// APIError carries the status and message of a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}
