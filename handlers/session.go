package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Access codes of the shared-dashboard login. The admin code unlocks the full
// dashboard; the provider code plus an email identifies an invited responder.
const (
	AdminAccessCode    = "1982"
	ProviderAccessCode = "0000"
)

const sessionCookieName = "vrshow_session"

// HandleSessionCreate signs a visitor in. The admin access code opens an admin
// session; the provider access code requires an email and opens a provider
// session whose email stamps every bid the responder submits.
func HandleSessionCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		code := strings.TrimSpace(e.Request.FormValue("code"))
		email := strings.TrimSpace(e.Request.FormValue("email"))

		var session Session
		switch code {
		case AdminAccessCode:
			session = Session{Role: RoleAdmin}
		case ProviderAccessCode:
			if email == "" {
				return jsonError(e, http.StatusBadRequest, "An email is required for provider access")
			}
			session = Session{Role: RoleProvider, Email: email}
		default:
			return jsonError(e, http.StatusUnauthorized, "Invalid access code")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessionCookieName,
			Value:    encodeSession(session),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.JSON(http.StatusOK, session)
	}
}

// HandleSessionDelete signs the visitor out by clearing the session cookie.
func HandleSessionDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.NoContent(http.StatusNoContent)
	}
}

// encodeSession serializes a session into a cookie value: the role, a pipe,
// and the query-escaped email.
func encodeSession(s Session) string {
	return s.Role + "|" + url.QueryEscape(s.Email)
}

// decodeSession parses a cookie value produced by encodeSession. Unknown
// roles and malformed values yield no session.
func decodeSession(value string) *Session {
	role, rawEmail, found := strings.Cut(value, "|")
	if !found {
		return nil
	}
	if role != RoleAdmin && role != RoleProvider {
		return nil
	}
	email, err := url.QueryUnescape(rawEmail)
	if err != nil {
		return nil
	}
	return &Session{Role: role, Email: email}
}
