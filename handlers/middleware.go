package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const SessionKey contextKey = "session"

// Session roles. Admins drive the dashboard; providers only submit bids.
const (
	RoleAdmin    = "admin"
	RoleProvider = "provider"
)

// Session identifies the signed-in visitor for the duration of a request.
type Session struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

// GetSession extracts the session from the request context, or nil when the
// visitor is not signed in.
func GetSession(r *http.Request) *Session {
	if val, ok := r.Context().Value(SessionKey).(*Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware reads the session cookie and stores the decoded session
// in the request context so handlers can check the caller's role.
func SessionMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(sessionCookieName)
		if err == nil && cookie.Value != "" {
			if session := decodeSession(cookie.Value); session != nil {
				ctx := context.WithValue(e.Request.Context(), SessionKey, session)
				e.Request = e.Request.WithContext(ctx)
			}
		}
		return e.Next()
	}
}

// RequireAdmin wraps a handler so only admin sessions reach it. Anonymous
// callers get 401, providers get 403.
func RequireAdmin(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return jsonError(e, http.StatusUnauthorized, "Sign in required")
		}
		if session.Role != RoleAdmin {
			return jsonError(e, http.StatusForbidden, "Admin access required")
		}
		return next(e)
	}
}

// RequireSession wraps a handler so any signed-in visitor reaches it.
func RequireSession(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if GetSession(e.Request) == nil {
			return jsonError(e, http.StatusUnauthorized, "Sign in required")
		}
		return next(e)
	}
}
