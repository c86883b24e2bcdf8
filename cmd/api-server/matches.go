package main

import (
	"fmt"
	"net/http"

	"tournament/internals/matches"
)

func (app *App) ScheduleMatch(w http.ResponseWriter, r *http.Request) {

	tournamentID, err := urlParamInt(r, "tournament_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid tournament id"})
		return
	}

	team1ID, err := formInt(r, "team1_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "team1_id is required"})
		return
	}
	team2ID, err := formInt(r, "team2_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "team2_id is required"})
		return
	}
	matchDate := r.FormValue("match_date")

	_, err = matches.New(app.KVStore, app.DB).ScheduleMatch(tournamentID, team1ID, team2ID, matchDate)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/tournament/%d", tournamentID), http.StatusSeeOther)
}

func (app *App) UpdateScore(w http.ResponseWriter, r *http.Request) {

	matchID, err := urlParamInt(r, "match_id")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid match id"})
		return
	}

	team1Score, err := formInt(r, "team1_score")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "team1_score is required"})
		return
	}
	team2Score, err := formInt(r, "team2_score")
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "team2_score is required"})
		return
	}

	tournamentID, err := matches.New(app.KVStore, app.DB).UpdateScore(matchID, team1Score, team2Score)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	// Push the fresh ranking to live subscribers. A zero tournament id means
	// the match did not exist and nothing changed.
	if tournamentID != 0 {
		app.BroadcastRankings(tournamentID)
	}

	http.Redirect(w, r, refererOrIndex(r), http.StatusSeeOther)
}
