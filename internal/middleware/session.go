package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/SkinTrade_Go/internal/logger"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// TokenParser turns a session token into a session ID
type TokenParser interface {
	Parse(token string) (string, error)
}

// SessionChecker reports whether a session is still alive
type SessionChecker interface {
	Exists(id string) bool
}

// WithSessionID returns a context carrying the authenticated session ID
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext returns the session ID set by SessionAuth or OptionalSession
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// SessionFromRequest is SessionIDFromContext over a request. It matches sse.SessionResolver.
func SessionFromRequest(r *http.Request) (string, bool) {
	return SessionIDFromContext(r.Context())
}

// SessionAuth rejects requests without a valid token for a live session.
func SessionAuth(tokens TokenParser, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			token := extractToken(r)
			if token == "" {
				log.Debug(LogMsgMissingToken, "path", r.URL.Path)
				writeUnauthorized(r, w, ErrMsgSessionRequired)
				return
			}

			sessionID, err := tokens.Parse(token)
			if err != nil {
				log.Warn(LogMsgInvalidToken, "path", r.URL.Path, "error", err)
				writeUnauthorized(r, w, ErrMsgSessionRequired)
				return
			}
			if !sessions.Exists(sessionID) {
				log.Info(LogMsgSessionGone, "session_id", sessionID)
				writeUnauthorized(r, w, ErrMsgSessionExpired)
				return
			}

			next.ServeHTTP(w, r.WithContext(attach(r.Context(), sessionID)))
		})
	}
}

// OptionalSession attaches the session when a valid token is present and never rejects.
func OptionalSession(tokens TokenParser, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r); token != "" {
				if sessionID, err := tokens.Parse(token); err == nil && sessions.Exists(sessionID) {
					r = r.WithContext(attach(r.Context(), sessionID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func attach(ctx context.Context, sessionID string) context.Context {
	return logger.WithSessionID(WithSessionID(ctx, sessionID), sessionID)
}

func extractToken(r *http.Request) string {
	if header := r.Header.Get(HeaderAuthorization); header != "" {
		if len(header) > len(BearerPrefix) && strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
			return strings.TrimSpace(header[len(BearerPrefix):])
		}
		return ""
	}
	return r.URL.Query().Get(QueryParamToken)
}

func writeUnauthorized(r *http.Request, w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgEncodeFailure, "error", err)
	}
}
