package core

import "errors"

// Accounts errors
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrMissingUserFields  = errors.New("username, name and password are required")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidUsername    = errors.New("username must be at least 2 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownLogin       = errors.New("unknown login")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrSelfDeletion       = errors.New("cannot delete own account")
)

// Tasks errors
var (
	ErrMissingTaskFields = errors.New("title and assignee are required")
	ErrUnknownAssignee   = errors.New("assigned user not found")
	ErrMissingStatus     = errors.New("status is required")
	ErrTaskNotFound      = errors.New("task not found")
)

// Caller errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrAdminRequired   = errors.New("admin access required")
	ErrForbidden       = errors.New("not authorized")
)
