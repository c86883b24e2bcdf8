package main

import (
	"fmt"
	"net/http"

	"tournament/internals/tournaments"
)

func (app *App) AddTeam(w http.ResponseWriter, r *http.Request) {

	tournamentID, err := urlParamInt(r, "tournament_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid tournament id"})
		return
	}

	name := r.FormValue("name")

	_, err = tournaments.New(app.KVStore, app.DB).AddTeam(tournamentID, name)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/tournament/%d", tournamentID), http.StatusSeeOther)
}

func (app *App) AddPlayer(w http.ResponseWriter, r *http.Request) {

	tournamentID, err := urlParamInt(r, "tournament_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid tournament id"})
		return
	}

	teamID, err := formInt(r, "team_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "team_id is required"})
		return
	}

	name := r.FormValue("name")

	_, err = tournaments.New(app.KVStore, app.DB).AddPlayer(teamID, name)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/tournament/%d", tournamentID), http.StatusSeeOther)
}
