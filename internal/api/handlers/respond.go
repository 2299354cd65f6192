package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sTrAy74/swi-web/internal/gateway"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondGatewayError maps an upstream failure onto our response: the
// upstream status and its already-sanitized message when we have one,
// a 502 with the fallback otherwise.
func respondGatewayError(w http.ResponseWriter, err error, fallback string) {
	status := gateway.StatusOf(err)
	if status == 0 {
		status = http.StatusBadGateway
	}
	respondWithError(w, status, gateway.UserMessage(err, fallback))
}
