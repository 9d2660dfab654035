package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"household-tasks/adapters/rest"
	"household-tasks/core"
	"household-tasks/pkg/res"
)

func NewLoginHandler(log *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.LoginIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.WriteErr(w, rest.ErrInvalidJSON)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := svc.Login(ctx, in.Username, in.Password)
		if err != nil {
			log.Debug("login rejected", "username", in.Username, "error", err)
			rest.WriteErr(w, err)
			return
		}
		res.Ok(w, "Login successful", map[string]any{"user": u})
	}
}

func NewListUsersHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListUsers(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewCreateUserHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, _ := rest.CallerFrom(r.Context())

		var in rest.CreateUserIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			rest.WriteErr(w, rest.ErrInvalidJSON)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := svc.CreateUser(ctx, admin, core.NewUserInput{
			Username: in.Username,
			Name:     in.Name,
			Password: in.Password,
			Role:     in.Role,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Ok(w, "User \""+u.Name+"\" created successfully", map[string]any{"user": u})
	}
}

func NewDeleteUserHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, _ := rest.CallerFrom(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, _, err := svc.DeleteUser(ctx, admin, r.PathValue("username"))
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Ok(w, "User \""+u.Name+"\" deleted successfully", nil)
	}
}
