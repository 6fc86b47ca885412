package middleware

import (
	"encoding/json"
	"net/http"
)

// jsonError writes the same {"error": ...} body the handlers package uses,
// so middleware rejections and handler failures look alike to clients.
func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
