package domain

import "errors"

var (
	// ErrUserNotFound is returned when no active system user matches a WQ id
	ErrUserNotFound = errors.New("user not found or inactive")

	// ErrUnknownMetric is returned when a metric selector is outside its closed set
	ErrUnknownMetric = errors.New("unknown metric")
)
