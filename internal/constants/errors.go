package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials  = errors.New("no credentials configured, set --token or --username/--password (or ASTRIA_API_KEY)")
	ErrPasswordPrompt = errors.New("password required but stdin is not a terminal")
	ErrUnknownOutput  = errors.New("unknown output format")
)

// Argument errors.
var (
	ErrInvalidTuneID   = errors.New("tune ID must be a positive integer")
	ErrInvalidPromptID = errors.New("prompt ID must be a positive integer")
	ErrNothingToUpdate = errors.New("nothing to update, pass at least one attribute flag")
	ErrInvalidFilter   = errors.New("filter must be of the form key=value")
)
