package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"household-tasks/adapters/rest"
	"household-tasks/core"
)

type Deps struct {
	Service *core.Service
	Pingers map[string]core.Pinger
	Static  fs.FS
}

func Register(mux *http.ServeMux, log *slog.Logger, deps Deps, timeout time.Duration) {
	svc := deps.Service

	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, deps.Pingers, timeout))

	// auth
	mux.Handle("POST /api/login", NewLoginHandler(log, svc, timeout))

	// users
	mux.Handle("GET /api/users", NewListUsersHandler(log, svc, timeout))
	mux.Handle("POST /api/users", rest.RequireAdmin(svc, NewCreateUserHandler(log, svc, timeout)))
	mux.Handle("DELETE /api/users/{username}", rest.RequireAdmin(svc, NewDeleteUserHandler(log, svc, timeout)))

	// tasks
	mux.Handle("GET /api/tasks", rest.RequireCaller(svc, NewListTasksHandler(log, svc, timeout)))
	mux.Handle("POST /api/tasks", rest.RequireAdmin(svc, NewCreateTaskHandler(log, svc, timeout)))
	mux.Handle("PATCH /api/tasks/{id}", rest.RequireCaller(svc, NewPatchTaskHandler(log, svc, timeout)))
	mux.Handle("DELETE /api/tasks/{id}", rest.RequireAdmin(svc, NewDeleteTaskHandler(log, svc, timeout)))

	// landing page and assets
	if deps.Static != nil {
		mux.Handle("GET /", http.FileServerFS(deps.Static))
	}
}
