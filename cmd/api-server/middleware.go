package main

import (
	"context"
	"net/http"

	"tournament/internals/auth"
)

// sessionToken pulls the session token from the cookie the login flow sets,
// falling back to an Authorization bearer header for API clients.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie("session_token"); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return ""
}

// RequireSession guards a route behind a valid whitelisted session. Missing
// or stale sessions bounce to the login page rather than erroring.
func (app *App) RequireSession(next http.Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token := sessionToken(r)
		if token == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Validate the token and recover the session it carries
		session, err := auth.New(app.KVStore, app.DB).ValidateToken(token)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Check if the token is in the list of valid tokens
		if !auth.New(app.KVStore, app.DB).CheckIfTokenIsWhiteListed(session.UserID, token) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), "session", session)
		ctx = context.WithValue(ctx, "token", token)

		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates mutations. Non-admin sessions are sent back where they
// came from with a flash message; nothing is mutated.
func (app *App) RequireAdmin(next http.Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		session := r.Context().Value("session").(auth.Session)
		if session.Role != auth.RoleAdmin {
			redirectWithFlash(w, r, refererOrIndex(r), "Access denied. Admin only.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
