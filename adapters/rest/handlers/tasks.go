package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"household-tasks/adapters/rest"
	"household-tasks/core"
	"household-tasks/pkg/res"
)

// parseID treats anything that is not a positive integer as an id no task can have.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, core.ErrTaskNotFound
	}
	return id, nil
}

func NewListTasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, _ := rest.CallerFrom(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListTasks(ctx, caller)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewCreateTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, _ := rest.CallerFrom(r.Context())

		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.WriteErr(w, rest.ErrInvalidJSON)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.CreateTask(ctx, admin, core.NewTaskInput{
			Title:       in.Title,
			Description: in.Description,
			AssignedTo:  in.AssignedTo,
			Priority:    in.Priority,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Ok(w, "Task assigned to "+t.AssignedToName, map[string]any{"task": t})
	}
}

func NewPatchTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, _ := rest.CallerFrom(r.Context())

		id, err := parseID(r)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		// an empty body is an empty patch; a malformed one is reported only after 404/403
		var in rest.PatchTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			if _, err := svc.TaskForCaller(ctx, caller, id); err != nil {
				rest.WriteErr(w, err)
				return
			}
			rest.WriteErr(w, rest.ErrInvalidJSON)
			return
		}

		t, err := svc.UpdateTaskStatus(ctx, caller, id, in.Status)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Ok(w, "Task updated", map[string]any{"task": t})
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, _ := rest.CallerFrom(r.Context())

		id, err := parseID(r)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteTask(ctx, admin, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Ok(w, "Task deleted", nil)
	}
}
