package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// requestMeta extracts the originating address and client identifier for
// audit columns. Decision logic never reads these.
func requestMeta(r *http.Request) (ipAddress string, userAgent string) {
	userAgent = r.Header.Get("User-Agent")

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ipAddress = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		return ipAddress, userAgent
	}

	ipAddress = r.RemoteAddr
	if idx := strings.LastIndex(ipAddress, ":"); idx > 0 {
		ipAddress = ipAddress[:idx]
	}
	return ipAddress, userAgent
}
