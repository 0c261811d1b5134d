package main

import (
	"database/sql"
	"time"

	"blackjackdealer-server/internal/config"
	"blackjackdealer-server/pkg/db"

	"github.com/sirupsen/logrus"
)

func main() {
	dbh := waitForDB()
	if err := db.MigrateDB(dbh, config.Instance().MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}

func waitForDB() *sql.DB {
	dsn := config.Instance().PGDSN
	if dsn == "" {
		logrus.Fatal("pgDsn is not configured")
	}

	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh, err := db.Open(dsn)
			if err == nil {
				return dbh
			}

			logrus.WithError(err).Debug("database is not ready")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
