package main

import (
	"errors"
	"net/http"

	"tournament/internals/auth"
)

func (app *App) Login(w http.ResponseWriter, r *http.Request) {

	username := r.FormValue("username")
	password := r.FormValue("password")
	role := r.FormValue("role")

	token, _, err := auth.New(app.KVStore, app.DB).Login(username, password, role)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		redirectWithFlash(w, r, "/login", "Invalid username or password")
		return
	}
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginPage is the JSON stand-in for the login view: it echoes any pending
// flash message so the frontend can render it.
func (app *App) LoginPage(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{
		"flash": r.URL.Query().Get("flash"),
	}})
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {

	token := sessionToken(r)
	if token != "" {
		if session, err := auth.New(app.KVStore, app.DB).ValidateToken(token); err == nil {
			_ = auth.New(app.KVStore, app.DB).Logout(session.UserID, token)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "session_token",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
