package engine

import "errors"

var (
	// ErrProjectNotFound indicates the project document does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrUnknownCriterion indicates an unrecognized sort or group criterion.
	ErrUnknownCriterion = errors.New("unknown criterion")
)
