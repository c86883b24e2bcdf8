package main

import "net/http"

func (app *App) initHandlers() {
	app.R.Get("/ws", app.HandleWebSocket)

	app.R.Post("/login", app.Login)
	app.R.Get("/login", app.LoginPage)
	app.R.Get("/logout", app.Logout)

	app.R.Get("/", app.RequireSession(http.HandlerFunc(app.Index)))
	app.R.Get("/tournament/{tournament_id}", app.RequireSession(http.HandlerFunc(app.TournamentDetails)))
	app.R.Get("/api/rankings/{tournament_id}", app.RequireSession(http.HandlerFunc(app.GetRankings)))

	app.R.Post("/create_tournament", app.RequireSession(app.RequireAdmin(http.HandlerFunc(app.CreateTournament))))
	app.R.Post("/add_team/{tournament_id}", app.RequireSession(app.RequireAdmin(http.HandlerFunc(app.AddTeam))))
	app.R.Post("/add_player/{tournament_id}", app.RequireSession(app.RequireAdmin(http.HandlerFunc(app.AddPlayer))))
	app.R.Post("/schedule_match/{tournament_id}", app.RequireSession(app.RequireAdmin(http.HandlerFunc(app.ScheduleMatch))))
	app.R.Post("/update_score/{match_id}", app.RequireSession(app.RequireAdmin(http.HandlerFunc(app.UpdateScore))))

	app.R.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am Healthy"))
	})

}
