package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/powercave/mail-service/internal/logger"
)

var authLog = logger.ForService("auth")

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RequireAPIKey guards service-to-service endpoints with a shared key
// carried in the X-API-Key header.
func RequireAPIKey(configuredKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if configuredKey == "" {
				authLog.Errorw("Configuration error: MAIL_SERVICE_API_KEY is not set", "action", "api_key_validation")
				writeJSONError(w, http.StatusInternalServerError,
					"Server misconfiguration: API Key authentication is not properly configured")
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				authLog.Warnw("Unauthorized attempt: Missing X-API-Key header",
					"action", "api_key_validation", "ip", r.RemoteAddr)
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized: Missing X-API-Key header")
				return
			}

			if apiKey != configuredKey {
				authLog.Warnw("Forbidden attempt: Invalid API Key",
					"action", "api_key_validation", "ip", r.RemoteAddr)
				writeJSONError(w, http.StatusForbidden, "Forbidden: Invalid API Key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
