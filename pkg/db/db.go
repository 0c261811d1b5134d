package db

import (
	"database/sql"
	"errors"
	"fmt"

	"blackjackdealer-server/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // postgres driver
	"github.com/sirupsen/logrus"
)

const defaultDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"

var instance *sql.DB

// Instance returns a database instance
func Instance() *sql.DB {
	if instance == nil {
		LoadInstance()
	}

	return instance
}

// LoadInstance will load the database instance
func LoadInstance() {
	dsn := config.Instance().PGDSN
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := Open(dsn)
	if err != nil {
		panic(err)
	}

	instance = db
}

// Open connects to postgres and verifies the connection
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs the migrations
func Migrate() {
	if err := MigrateDB(Instance(), config.Instance().MigrationsPath); err != nil {
		panic(err)
	}
}

// MigrateDB runs the migrations found in migrationsPath against db
func MigrateDB(db *sql.DB, migrationsPath string) error {
	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
