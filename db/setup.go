package db

import (
	"tournament/internals/auth"
	"tournament/internals/matches"
	"tournament/internals/tournaments"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Setup creates the schema if it is absent and seeds the default admin
// account. Safe to run on every startup.
func Setup(db *gorm.DB, adminPassword string) error {
	err := db.AutoMigrate(
		&tournaments.Tournament{},
		&tournaments.Team{},
		&tournaments.Player{},
		&matches.Match{},
		&auth.Users{},
	)
	if err != nil {
		return err
	}

	return SeedAdmin(db, adminPassword)
}

// SeedAdmin inserts the default admin user unless one already exists.
func SeedAdmin(db *gorm.DB, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	var user auth.Users
	return db.Where(auth.Users{UserName: "admin", Role: auth.RoleAdmin}).
		Attrs(auth.Users{Password: hash}).
		FirstOrCreate(&user).Error
}
