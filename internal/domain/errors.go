package domain

import "errors"

// Domain errors.
var (
	ErrIndexOutOfRange        = errors.New("task index out of range")
	ErrEmptyName              = errors.New("name cannot be empty")
	ErrInvalidPriority        = errors.New("invalid priority (want low, medium or high)")
	ErrInvalidLocation        = errors.New("invalid location (want home, school or supermarket)")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
	ErrGeolocationUnavailable = errors.New("location is unavailable")
	ErrGeolocationDenied      = errors.New("location access denied")
	ErrUnknownBackend         = errors.New("unknown store backend")
	ErrUnknownFormat          = errors.New("unknown export format")
	ErrConfigExists           = errors.New("config file already exists")
	ErrMigrationConflict      = errors.New("destination store already holds a different task list")
	ErrNoLogFile              = errors.New("no log file")
	ErrSameBackend            = errors.New("destination backend is the active backend")
)
