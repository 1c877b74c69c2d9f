package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/drstein77/storefront/internal/config"
	"github.com/drstein77/storefront/internal/controllers"
	"github.com/drstein77/storefront/internal/datasource"
	"github.com/drstein77/storefront/internal/dbkeeper"
	"github.com/drstein77/storefront/internal/logger"
	"github.com/drstein77/storefront/internal/models"
	"github.com/drstein77/storefront/internal/storage"
	"github.com/drstein77/storefront/web"
	"go.uber.org/zap"
)

type Server struct {
	mu      sync.Mutex
	srv     *http.Server
	stopped bool

	ctx     context.Context
	option  *config.Options
	storage *storage.MemoryStorage
	Log     *logger.Logger
}

// NewServer creates a new Server instance with the provided context and
// options. The logger is ready on return.
func NewServer(ctx context.Context, option *config.Options) *Server {
	// get a new logger
	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}

	return &Server{
		ctx:    ctx,
		option: option,
		Log:    nLogger,
	}
}

// Serve loads the storefront once and serves it until Shutdown is called.
// It returns without listening if the context is cancelled during the load.
func (server *Server) Serve() {
	option := server.option
	nLogger := server.Log
	defer nLogger.Sync()

	shell := web.Page()
	if path := option.PageTemplate(); path != "" {
		var err error
		shell, err = os.ReadFile(path)
		if err != nil {
			nLogger.Error("Unable to read page template", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
	}

	src, keeper := server.newSource(option)

	var storeKeeper storage.Keeper
	if keeper != nil {
		storeKeeper = keeper
	}

	nLogger.Info("Fetching books data...", zap.String("source", option.DataSource()))
	snap, err := LoadStorefront(server.ctx, src, option.FetchTimeout(), shell, nLogger)
	if err != nil {
		if storeKeeper != nil {
			storeKeeper.Close()
		}
		nLogger.Error("Unable to render storefront", zap.Error(err))
		os.Exit(1)
	}
	nLogger.Info("Books loaded successfully!")

	server.storage = storage.NewMemoryStorage(snap, storeKeeper, nLogger)
	defer server.storage.Close()

	basecontr := controllers.NewBaseController(server.storage, web.Static(), nLogger)
	srv := &http.Server{
		Addr:    option.RunAddr(),
		Handler: basecontr.Route(),
	}

	server.mu.Lock()
	if server.stopped || server.ctx.Err() != nil {
		server.mu.Unlock()
		nLogger.Info("Stopped before serving")
		return
	}
	server.srv = srv
	server.mu.Unlock()

	nLogger.Info("Running server", zap.String("address", option.RunAddr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		nLogger.Error("Server failed", zap.Error(err))
	}
}

// newSource picks the database when a DSN is configured and the file or
// URL source otherwise. A database that cannot be reached still yields a
// source, one that fails and leads to the fallback catalog.
func (server *Server) newSource(option *config.Options) (datasource.Source, *dbkeeper.DBKeeper) {
	if option.DataBaseDSN() == "" {
		return datasource.New(option.DataSource(), http.DefaultClient), nil
	}

	if err := dbkeeper.Migrate(option.DataBaseDSN(), option.MigrationsDir(), server.Log); err != nil {
		server.Log.Error("Migration failed", zap.Error(err))
	}

	keeper, err := dbkeeper.NewDBKeeper(server.ctx, option.DataBaseDSN, server.Log)
	if err != nil {
		return unavailable{err: err}, nil
	}
	return keeper, keeper
}

// Shutdown stops accepting requests and waits for in-flight ones. Called
// before Serve starts listening, it keeps Serve from listening at all.
func (server *Server) Shutdown(timeout time.Duration) {
	server.mu.Lock()
	server.stopped = true
	srv := server.srv
	server.mu.Unlock()

	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		server.Log.Error("Server shutdown failed", zap.Error(err))
		return
	}
	server.Log.Info("Server stopped")
}

type unavailable struct {
	err error
}

func (u unavailable) Load(context.Context) ([]models.Item, error) {
	return nil, fmt.Errorf("%w: %v", datasource.ErrFetch, u.err)
}

func (u unavailable) String() string {
	return "database"
}
