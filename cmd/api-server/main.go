package main

import (
	"net/http"
	"sync"

	"tournament/db"
	"tournament/internals/auth"
	"tournament/pkg/conf"
	"tournament/pkg/kvstore"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type App struct {
	DB       *gorm.DB
	R        *chi.Mux
	WS       map[*websocket.Conn]WSDetails
	ClientsM sync.Mutex
	KVStore  kvstore.KVStore
	Cfg      *viper.Viper
}

func main() {

	cfg := conf.Config(".")
	auth.JWTSecret = []byte(cfg.GetString("auth.jwt_secret"))

	app := &App{
		WS:  make(map[*websocket.Conn]WSDetails),
		Cfg: cfg,
	}

	gdb, err := app.initDB()
	failOnError(err, "Failed to connect to database")

	err = db.Setup(gdb, cfg.GetString("auth.admin_password"))
	failOnError(err, "Failed to set up database")

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// CORS middleware configuration
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.GetString("server.cors_origin")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)

	app.DB = gdb
	app.R = r

	app.initKVStore()
	app.initHandlers()

	if err := http.ListenAndServe(cfg.GetString("server.addr"), r); err != nil {
		panic(err)
	}

}
