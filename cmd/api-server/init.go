package main

import (
	"log"

	"tournament/db"

	"tournament/pkg/kvstore"

	"gorm.io/gorm"
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

func (app *App) initDB() (*gorm.DB, error) {
	return db.Open(app.Cfg.GetString("database.dsn"))
}

func (app *App) initKVStore() {
	addr := app.Cfg.GetString("redis.addr")
	if addr == "" {
		// redis-less dev setup
		app.KVStore = kvstore.NewMem()
		return
	}
	app.KVStore = kvstore.NewRedis(addr, app.Cfg.GetString("redis.password"), app.Cfg.GetInt("redis.db"))
}
