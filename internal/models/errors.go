package models

import "errors"

var (
	ErrInvalidTeamSize   = errors.New("team size must be a whole number from 1 to 100")
	ErrUsernameRequired  = errors.New("username is required")
	ErrInvalidUsername   = errors.New("username must be 3-20 characters long and contain only letters, numbers, underscores, and hyphens")
	ErrCandidatesOffline = errors.New("candidate pool unavailable")

	ErrMissingUserFields  = errors.New("missing required fields: id and email")
	ErrUserNotFound       = errors.New("user not found")
	ErrWorkStatusNotFound = errors.New("user work status not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrRecruiterOnly      = errors.New("recruiter access required")
	ErrUserIDRequired     = errors.New("userId is required")
	ErrInvalidDate        = errors.New("dates must be YYYY-MM-DD or RFC 3339")
)
