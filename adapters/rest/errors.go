package rest

import (
	"context"
	"errors"
	"net/http"

	"household-tasks/core"
	"household-tasks/pkg/res"
)

var ErrInvalidJSON = errors.New("invalid json body")

type errResponse struct {
	err    error
	msg    string
	status int
}

// Order matters: the first matching sentinel wins.
var errTable = []errResponse{
	{ErrInvalidJSON, "Invalid JSON body", http.StatusBadRequest},
	{core.ErrMissingCredentials, "Username and password are required", http.StatusBadRequest},
	{core.ErrMissingUserFields, "Username, name, and password are required", http.StatusBadRequest},
	{core.ErrDuplicateUsername, "Username already exists", http.StatusBadRequest},
	{core.ErrInvalidUsername, "Username must be at least 2 characters", http.StatusBadRequest},
	{core.ErrSelfDeletion, "You cannot delete your own account", http.StatusBadRequest},
	{core.ErrMissingTaskFields, "Title and assignee are required", http.StatusBadRequest},
	{core.ErrUnknownAssignee, "Assigned user not found", http.StatusBadRequest},
	{core.ErrMissingStatus, "Status is required", http.StatusBadRequest},
	{core.ErrUnknownLogin, "User not found", http.StatusUnauthorized},
	{core.ErrInvalidPassword, "Invalid password", http.StatusUnauthorized},
	{core.ErrUnauthenticated, "Authentication required", http.StatusUnauthorized},
	{core.ErrAdminRequired, "Admin access required", http.StatusForbidden},
	{core.ErrForbidden, "Not authorized", http.StatusForbidden},
	{core.ErrUserNotFound, "User not found", http.StatusNotFound},
	{core.ErrTaskNotFound, "Task not found", http.StatusNotFound},
	{context.DeadlineExceeded, "Request timed out", http.StatusServiceUnavailable},
	{context.Canceled, "Request cancelled", http.StatusServiceUnavailable},
}

// WriteErr maps a domain error to its status and message; anything unknown is a 500.
func WriteErr(w http.ResponseWriter, err error) {
	for _, e := range errTable {
		if errors.Is(err, e.err) {
			res.Error(w, e.msg, e.status)
			return
		}
	}
	res.Error(w, "internal error", http.StatusInternalServerError)
}
