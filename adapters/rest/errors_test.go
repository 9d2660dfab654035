package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"household-tasks/core"
)

func TestWriteErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{core.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
		{core.ErrAdminRequired, http.StatusForbidden, "Admin access required"},
		{core.ErrForbidden, http.StatusForbidden, "Not authorized"},
		{core.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{core.ErrUnknownLogin, http.StatusUnauthorized, "User not found"},
		{fmt.Errorf("wrapped: %w", core.ErrTaskNotFound), http.StatusNotFound, "Task not found"},
		{core.ErrSelfDeletion, http.StatusBadRequest, "You cannot delete your own account"},
		{fmt.Errorf("list tasks: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, "Request timed out"},
		{errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteErr(rec, tc.err)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, rec.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Success || body.Message != tc.msg {
			t.Fatalf("%v: unexpected body %+v", tc.err, body)
		}
	}
}
