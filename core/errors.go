package core

import "errors"

var (
	// ErrMissingToken is returned when no Slack API token is configured
	ErrMissingToken = errors.New("SLACK_API_TOKEN not defined")

	// ErrEmptyVocabulary is returned when a reaction vocabulary has no usable entries
	ErrEmptyVocabulary = errors.New("reaction vocabulary is empty")

	// ErrAlreadyStarted is returned when an event source is started more than once
	ErrAlreadyStarted = errors.New("event source already started")

	// ErrEmptyIDPrefix is returned when an ID is requested without a prefix
	ErrEmptyIDPrefix = errors.New("id prefix cannot be empty")

	// ErrInvalidAuth is returned when Slack rejects the token on the realtime connection
	ErrInvalidAuth = errors.New("slack rejected the API token")
)
