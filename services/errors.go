package services

import "errors"

// Errors shared across services and the HTTP mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrGameNameRequired   = errors.New("game name is required")
	ErrDateRequired       = errors.New("date is required")
	ErrInvalidDate        = errors.New("invalid date in the request")
	ErrFutureDate         = errors.New("date cannot be in the future")
	ErrNegativeScore      = errors.New("score cannot be negative")

	// Conflicts
	ErrScoreDuplicate = errors.New("score already exists for this player, game, and date")

	// Authentication
	ErrInvalidPassword = errors.New("invalid password")

	// Entity-specific not-found (more context than the generic one)
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrScoreNotFound  = errors.New("score not found")

	// Reporting
	ErrNoMonthlyScores = errors.New("no scores found for this month")

	// Storage
	ErrAvatarsDisabled       = errors.New("avatar uploads are not configured")
	ErrUnsupportedAvatarType = errors.New("unsupported avatar content type")
)
