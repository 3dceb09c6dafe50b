package entity

import "errors"

// Domain errors shared across usecases and adapters.
var (
	ErrInvalidConfidenceLevel = errors.New("confidence level must be between 1 and 5")
	ErrSubjectNotFound        = errors.New("subject not found")
	ErrTopicNotFound          = errors.New("topic not found")
	ErrTopicNotRated          = errors.New("topic has no confidence data yet")
	ErrSubtopicNotFound       = errors.New("subtopic not found")
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskTypeNotFound       = errors.New("task type not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrDuplicateUser          = errors.New("user already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrStatsUnavailable       = errors.New("analytics store unavailable")
)
