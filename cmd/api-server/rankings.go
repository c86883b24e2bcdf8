package main

import (
	"net/http"

	"tournament/internals/rankings"
)

func (app *App) GetRankings(w http.ResponseWriter, r *http.Request) {

	tournamentID, err := urlParamInt(r, "tournament_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid tournament id"})
		return
	}

	list, err := rankings.New(app.KVStore, app.DB).GetRankings(tournamentID)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: list})
}
