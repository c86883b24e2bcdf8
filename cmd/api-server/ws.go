package main

import (
	"log"
	"net/http"
	"strconv"

	"tournament/internals/rankings"

	"github.com/gorilla/websocket"
)

// WSDetails records which tournament a live connection follows.
type WSDetails struct {
	TournamentID int
}

// HandleWebSocket subscribes a client to the live ranking feed of one
// tournament. Every recorded score pushes the recomputed ranking.
func (app *App) HandleWebSocket(w http.ResponseWriter, r *http.Request) {

	tournamentID, err := strconv.Atoi(r.URL.Query().Get("tournament_id"))
	if err != nil {
		http.Error(w, "tournament_id is required", http.StatusBadRequest)
		return
	}

	var upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Could not open websocket connection", http.StatusBadRequest)
		return
	}

	app.ClientsM.Lock()
	app.WS[conn] = WSDetails{TournamentID: tournamentID}
	app.ClientsM.Unlock()

	// Drain the connection until the client goes away, then reap it.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		app.ClientsM.Lock()
		delete(app.WS, conn)
		app.ClientsM.Unlock()
		conn.Close()
	}()
}

// BroadcastRankings sends the current ranking of a tournament to every
// connection subscribed to it, dropping the ones that fail.
func (app *App) BroadcastRankings(tournamentID int) {

	list, err := rankings.New(app.KVStore, app.DB).GetRankings(tournamentID)
	if err != nil {
		log.Printf("error computing rankings for broadcast: %v", err)
		return
	}

	app.ClientsM.Lock()
	defer app.ClientsM.Unlock()

	for conn, details := range app.WS {
		if details.TournamentID != tournamentID {
			continue
		}
		if err := conn.WriteJSON(list); err != nil {
			conn.Close()
			delete(app.WS, conn)
		}
	}
}
