//go:generate swag init --output api --outputTypes go

package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fintrack/backend/internal/amqp"
	"github.com/fintrack/backend/internal/config"
	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/ledger"
	"github.com/fintrack/backend/internal/router"
	"github.com/fintrack/backend/internal/rules"
	"github.com/fintrack/backend/internal/storage"
	"github.com/fintrack/backend/internal/storage/local"
	"github.com/fintrack/backend/internal/storage/mongo"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.LocalDBPath), os.ModePerm); err != nil {
		return err
	}

	secondary, err := local.Open(cfg.LocalDBPath, cfg.LocalNamespace)
	if err != nil {
		return err
	}

	// Without a reachable cloud store, everything runs on the local store
	primary := storage.NotConfigured("mongo")
	if cfg.MongoURI != "" {
		m, err := mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTimeout)
		if err != nil {
			log.Error().Err(err).Msg("MongoDB unavailable, using local storage only")
		} else {
			primary = m
		}
	}

	bus := &events.Bus{}
	store := storage.NewFallback(primary, secondary, bus)
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Closing storage")
		}
	}()

	opts := []ledger.Option{ledger.WithEvaluator(rules.Evaluator{Currency: cfg.Currency})}
	if cfg.AMQPURL != "" {
		pub, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Error().Err(err).Msg("AMQP unavailable, notifications are not forwarded")
		} else {
			defer pub.Close()
			cancel := pub.Forward(bus)
			defer cancel()
			opts = append(opts, ledger.WithNotifier(pub))
		}
	}

	l, err := ledger.New(ctx, store, opts...)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(cfg.APIURL)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(v1.Controller{Ledger: l, Bus: bus}, r.Group("/"))

	// Event streams are long-lived, so there is no WriteTimeout. They end
	// when the base context is cancelled on shutdown.
	base, cancelStreams := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	server.RegisterOnShutdown(cancelStreams)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", server.Addr).Msg("Listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
