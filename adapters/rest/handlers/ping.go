package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"household-tasks/core"
	"household-tasks/pkg/res"
)

// NewPingHandler reports every store; one failing store turns the whole answer into a 503.
func NewPingHandler(log *slog.Logger, stores map[string]core.Pinger, timeout time.Duration) http.HandlerFunc {
	names := make([]string, 0, len(stores))
	for name := range stores {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		state := make(map[string]string, len(names))
		healthy := true

		for _, name := range names {
			if err := stores[name].Ping(ctx); err != nil {
				log.Warn("store ping failed", "store", name, "error", err)
				state[name] = "down"
				healthy = false
				continue
			}
			state[name] = "ok"
		}

		if !healthy {
			res.Json(w, map[string]any{"success": false, "services": state}, http.StatusServiceUnavailable)
			return
		}
		res.Json(w, map[string]any{"success": true, "services": state}, http.StatusOK)
	}
}
