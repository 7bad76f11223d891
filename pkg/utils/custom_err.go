package utils

import "errors"

var (
	ErrAirportNotFound     = errors.New("airport code not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrValidation          = errors.New("missing required field")
	ErrDatabaseError       = errors.New("database error")
)
