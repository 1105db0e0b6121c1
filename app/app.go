// Package app owns the process-wide resources: the Mongo client, the feed
// client and the HTTP server. Open acquires them, Run serves, Close releases.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/UmangSachdeva/SalesReport/config"
	"github.com/UmangSachdeva/SalesReport/feed"
	"github.com/UmangSachdeva/SalesReport/handlers"
	"github.com/UmangSachdeva/SalesReport/importer"
	"github.com/UmangSachdeva/SalesReport/logger"
	"github.com/UmangSachdeva/SalesReport/router"
	"github.com/UmangSachdeva/SalesReport/store"
)

// BatchImporter runs the startup import.
type BatchImporter interface {
	ImportAll(ctx context.Context) []importer.Result
}

type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client

	listen    func(network, addr string) (net.Listener, error)
	closed    chan struct{}
	closeOnce sync.Once

	Store    *store.TransactionStore
	Feed     *feed.Client
	Importer BatchImporter
	Server   *http.Server
}

func newApp(cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		log:    log,
		listen: net.Listen,
		closed: make(chan struct{}),
	}
}

// Open connects to Mongo and wires every component. Nothing listens yet.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	client, err := config.ConnectToMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.MongoDatabase).Str("collection", cfg.MongoCollection).Msg("MongoDB connection established")

	a := newApp(cfg, log)
	a.client = client
	a.Store = store.NewTransactionStore(config.TransactionCollection(client, cfg))
	a.Feed = feed.NewClient(cfg.FeedURL, cfg.FeedTimeout, logger.Component(log, logger.ComponentFeed))
	a.Importer = importer.New(a.Feed, a.Store, logger.Component(log, logger.ComponentImporter))

	h := handlers.NewHandler(a.Store, ReportSource(cfg, a.Feed, a.Store), func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})

	a.Server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Router(h, logger.Component(log, logger.ComponentHTTP)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	return a, nil
}

// ReportSource picks where the report routes read transactions from.
func ReportSource(cfg *config.Config, feedSource, storeSource handlers.TransactionFinder) handlers.TransactionFinder {
	if cfg.ReportSource == config.ReportSourceStore {
		return storeSource
	}
	return feedSource
}

// Run imports the feed when configured, then serves. The import finishes
// before the listener opens. After Close is called, Run returns only once
// Close has drained requests and released every resource.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.ImportOnStart {
		results := a.Importer.ImportAll(ctx)
		if failed := importer.Failed(results); failed > 0 {
			a.log.Warn().Int("failed", failed).Int("total", len(results)).Msg("Some transactions were not imported")
		}
	}

	ln, err := a.listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	a.log.Info().Str("addr", ln.Addr().String()).Str("report_source", a.cfg.ReportSource).Msg("Server listening")
	if err := a.Server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	<-a.closed
	return nil
}

// Close stops the HTTP server and disconnects from Mongo. It is safe to call
// more than once and after a failed Run.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
		}
	}
	if a.client != nil {
		if err := a.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
			errs = append(errs, fmt.Errorf("disconnect mongo: %w", err))
		}
	}
	if a.closed != nil {
		a.closeOnce.Do(func() { close(a.closed) })
	}
	return errors.Join(errs...)
}
