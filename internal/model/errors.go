package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Stats errors
	ErrStatsNotFound = errors.New("player stats not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
