package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tournament/db"
	"tournament/internals/auth"
	"tournament/internals/rankings"
	"tournament/internals/tournaments"
	"tournament/pkg/kvstore"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Setup(gdb, "admin123"); err != nil {
		t.Fatalf("setup schema: %v", err)
	}

	hash, err := auth.HashPassword("viewer-pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	err = gdb.Create(&auth.Users{UserName: "viewer", Password: hash, Role: auth.RoleUser}).Error
	if err != nil {
		t.Fatalf("create viewer: %v", err)
	}

	app := &App{
		DB:      gdb,
		R:       chi.NewRouter(),
		WS:      make(map[*websocket.Conn]WSDetails),
		KVStore: kvstore.NewMem(),
	}
	app.initHandlers()
	return app
}

func postForm(app *App, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.R.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, app *App, username, password, role string) *http.Cookie {
	t.Helper()
	rec := postForm(app, "/login", url.Values{
		"username": {username},
		"password": {password},
		"role":     {role},
	}, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login %s/%s: status %d", username, role, rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_token" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("login %s/%s: no session cookie set", username, role)
	return nil
}

func TestLoginFailureRedirectsWithFlash(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(app, "/login", url.Values{
		"username": {"viewer"},
		"password": {"wrong"},
		"role":     {auth.RoleUser},
	}, nil)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login") || !strings.Contains(loc, "flash=") {
		t.Errorf("redirect target = %q, want /login with a flash", loc)
	}
}

func TestRequireSessionRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/tournament/1", "/api/rankings/1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		app.R.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
			t.Errorf("GET %s without session: status %d location %q, want 303 to /login",
				path, rec.Code, rec.Header().Get("Location"))
		}
	}
}

// A non-admin session hitting any mutation endpoint is denied and nothing is
// inserted or mutated.
func TestNonAdminCannotMutate(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "viewer", "viewer-pass", auth.RoleUser)

	mutations := []struct {
		path string
		form url.Values
	}{
		{"/create_tournament", url.Values{"name": {"Cup"}, "start_date": {"2026-09-01"}}},
		{"/add_team/1", url.Values{"name": {"A"}}},
		{"/add_player/1", url.Values{"name": {"Pat"}, "team_id": {"1"}}},
		{"/schedule_match/1", url.Values{"team1_id": {"1"}, "team2_id": {"2"}, "match_date": {"2026-09-02"}}},
		{"/update_score/1", url.Values{"team1_score": {"3"}, "team2_score": {"1"}}},
	}

	for _, m := range mutations {
		rec := postForm(app, m.path, m.form, cookie)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("POST %s as non-admin: status %d, want 303", m.path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "flash=") {
			t.Errorf("POST %s as non-admin: redirect %q carries no flash", m.path, loc)
		}
	}

	var tournamentCount, teamCount, playerCount, matchCount int64
	app.DB.Table("tournaments").Count(&tournamentCount)
	app.DB.Table("teams").Count(&teamCount)
	app.DB.Table("players").Count(&playerCount)
	app.DB.Table("matches").Count(&matchCount)
	if tournamentCount+teamCount+playerCount+matchCount != 0 {
		t.Errorf("non-admin mutated rows: tournaments=%d teams=%d players=%d matches=%d",
			tournamentCount, teamCount, playerCount, matchCount)
	}
}

// Full admin flow over the router: create, populate, score, rank.
func TestAdminFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "admin", "admin123", auth.RoleAdmin)

	rec := postForm(app, "/create_tournament", url.Values{
		"name": {"Cup"}, "start_date": {"2026-09-01"},
	}, cookie)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("create tournament: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	var cup tournaments.Tournament
	if err := app.DB.First(&cup).Error; err != nil {
		t.Fatalf("load tournament: %v", err)
	}

	for _, name := range []string{"A", "B"} {
		rec = postForm(app, fmt.Sprintf("/add_team/%d", cup.TournamentID), url.Values{"name": {name}}, cookie)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("add team %s: status %d", name, rec.Code)
		}
	}

	var teams []tournaments.Team
	if err := app.DB.Order("team_id").Find(&teams).Error; err != nil || len(teams) != 2 {
		t.Fatalf("load teams: %v (%d rows)", err, len(teams))
	}

	rec = postForm(app, fmt.Sprintf("/schedule_match/%d", cup.TournamentID), url.Values{
		"team1_id":   {fmt.Sprint(teams[0].TeamID)},
		"team2_id":   {fmt.Sprint(teams[1].TeamID)},
		"match_date": {"2026-09-02"},
	}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("schedule match: status %d", rec.Code)
	}

	rec = postForm(app, "/update_score/1", url.Values{
		"team1_score": {"3"}, "team2_score": {"1"},
	}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("update score: status %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/rankings/%d", cup.TournamentID), nil)
	req.AddCookie(cookie)
	rrec := httptest.NewRecorder()
	app.R.ServeHTTP(rrec, req)
	if rrec.Code != http.StatusOK {
		t.Fatalf("get rankings: status %d", rrec.Code)
	}

	var resp struct {
		Status int                    `json:"status"`
		Data   []rankings.TeamRanking `json:"data"`
	}
	if err := json.Unmarshal(rrec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode rankings: %v", err)
	}
	want := []rankings.TeamRanking{{TeamName: "A", Wins: 1}, {TeamName: "B", Wins: 0}}
	if len(resp.Data) != 2 || resp.Data[0] != want[0] || resp.Data[1] != want[1] {
		t.Errorf("rankings = %v, want %v", resp.Data, want)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "viewer", "viewer-pass", auth.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.R.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout: status %d", rec.Code)
	}

	// The old token is revoked: the next guarded request bounces.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	app.R.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("guarded request after logout: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}
}
