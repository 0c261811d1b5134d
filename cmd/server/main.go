package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blackjackdealer-server/internal/config"
	"blackjackdealer-server/internal/jwt"
	"blackjackdealer-server/internal/mux"
	"blackjackdealer-server/internal/rng"
	"blackjackdealer-server/pkg/db"
	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/table"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	jwt.LoadKeys()

	cfg := config.Instance()

	engine, err := blackjack.NewEngine(logrus.StandardLogger(), rng.Crypto{}, cfg.Game)
	if err != nil {
		logrus.WithError(err).Fatal("could not create engine")
	}

	m := mux.NewMux(Version, newStore(cfg), engine)

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logrus.Info("shutting down")

		// display clients are hijacked connections, so they are closed separately
		m.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// newStore keeps tables in postgres when a DSN is configured and in memory otherwise
func newStore(cfg config.Config) table.Store {
	if cfg.PGDSN == "" {
		logrus.Warn("no pgDsn configured, tables will not survive a restart")
		return table.NewMemoryStore()
	}

	// run the db migrations
	db.Migrate()
	return table.NewPGStore(db.Instance())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
