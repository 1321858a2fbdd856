package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

// ClaimsContextKey holds the verified JWT claims for downstream
// handlers.
const ClaimsContextKey contextKey = "jwtClaims"

// Roles allowed to read mail-service data.
var allowedMailRoles = map[string]bool{
	"MANAGER":    true,
	"SUPERADMIN": true,
}

// RequireAuth verifies a Bearer JWT signed with the configured secret
// and stashes its claims in the request context.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "Missing or invalid token")
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				writeJSONError(w, http.StatusUnauthorized, "Missing token")
				return
			}

			if secret == "" {
				writeJSONError(w, http.StatusInternalServerError, "Server misconfiguration: missing JWT secret")
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				writeJSONError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireMailServiceAccess allows only manager-level roles through.
// Must run after RequireAuth.
func RequireMailServiceAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsContextKey).(jwt.MapClaims)
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		role, _ := claims["role"].(string)
		if !allowedMailRoles[role] {
			writeJSONError(w, http.StatusForbidden, "User does not have necessary permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
