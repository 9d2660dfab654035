package res

import (
	"encoding/json"
	"net/http"
)

func Json(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// Ok writes the success envelope {"success":true,"message":...} plus any extra top-level fields.
func Ok(w http.ResponseWriter, msg string, extra map[string]any) {
	body := make(map[string]any, len(extra)+2)
	for k, v := range extra {
		body[k] = v
	}
	body["success"] = true
	body["message"] = msg
	Json(w, body, http.StatusOK)
}

// Error writes the failure envelope. It is the only shape clients see for a failed request.
func Error(w http.ResponseWriter, msg string, statusCode int) {
	Json(w, map[string]any{"success": false, "message": msg}, statusCode)
}
