package main

import (
	"errors"
	"net/http"

	"tournament/internals/tournaments"

	"gorm.io/gorm"
)

func (app *App) Index(w http.ResponseWriter, r *http.Request) {

	list, err := tournaments.New(app.KVStore, app.DB).GetTournaments()
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{
		"tournaments": list,
		"flash":       r.URL.Query().Get("flash"),
	}})
}

func (app *App) CreateTournament(w http.ResponseWriter, r *http.Request) {

	name := r.FormValue("name")
	startDate := r.FormValue("start_date")

	_, err := tournaments.New(app.KVStore, app.DB).CreateTournament(name, startDate)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *App) TournamentDetails(w http.ResponseWriter, r *http.Request) {

	tournamentID, err := urlParamInt(r, "tournament_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid tournament id"})
		return
	}

	details, err := tournaments.New(app.KVStore, app.DB).GetTournamentDetails(tournamentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: "tournament not found"})
		return
	}
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: details})
}
