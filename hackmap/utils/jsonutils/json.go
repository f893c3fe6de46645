package jsonutils

import (
	"encoding/json"
	"net/http"

	"hackmap/hackmap/utils/logging"

	"go.uber.org/zap"
)

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.ErrorLogger.Error("response encode error", zap.Error(err))
	}
}

// WriteError writes the standard {"error": msg} failure body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
