package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/model"
)

// Auth gate failure messages.
const (
	MsgNoToken      = "Access denied. No token provided."
	MsgInvalidToken = "Invalid or expired token."
)

// TokenVerifier resolves a bearer token into an identity.
type TokenVerifier interface {
	Verify(token string) (model.Identity, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger  *slog.Logger
	Tokens  TokenVerifier
	Metrics metrics.Recorder
}

// Auth returns a middleware that authenticates requests with a bearer token.
// On success the resolved identity is stored in the request context.
// It never touches a store.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logAuthFailure(cfg.Logger, r, "missing_token")
				recorder.IncAuthRejected()
				writeError(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			identity, err := cfg.Tokens.Verify(token)
			if err != nil {
				logAuthFailure(cfg.Logger, r, "invalid_token")
				recorder.IncAuthRejected()
				writeError(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token from "Authorization: Bearer <token>".
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func logAuthFailure(logger *slog.Logger, r *http.Request, reason string) {
	if logger == nil {
		return
	}
	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("ip", r.RemoteAddr),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}
