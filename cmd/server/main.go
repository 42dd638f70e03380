package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classboard/internal/classboard/adapter"
	"classboard/internal/classboard/catalog"
	"classboard/internal/classboard/config"
	"classboard/internal/classboard/handler"
	"classboard/internal/classboard/repository"
	"classboard/internal/classboard/router"
	"classboard/internal/classboard/service"
	"classboard/internal/classboard/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 0. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		util.InitLogger()
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 1. Init Logger
	util.InitLogger(cfg.LogLevel)
	logger := util.GetLogger()

	// 2. Load the widget catalog
	cat, err := catalog.New()
	if err != nil {
		logger.Error("Failed to load widget catalog", "error", err)
		os.Exit(1)
	}

	// 3. Open the layout store. Nothing below may os.Exit past the deferred Close.
	store, err := openStore(cfg)
	if err != nil {
		logger.Error("Failed to open layout store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close layout store", "error", err)
		}
	}()

	// 4. Init Layers
	mic := adapter.NewFeedMicrophone()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.NewService(ctx, cat, repository.NewLayout(store, cat), service.Options{
		TickInterval:      cfg.TickInterval,
		StopwatchInterval: cfg.StopwatchInterval,
		Microphone:        mic,
	})
	defer svc.Close()
	h := handler.NewClassboardHandler(svc, mic)

	// 5. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", "port", cfg.Port, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "error", err)
	}
	logger.Info("Server exited properly")
}

func openStore(cfg *config.Config) (repository.KVStore, error) {
	switch cfg.StoreBackend {
	case config.StoreMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return repository.NewMongoStore(client.Database(cfg.DBName), cfg.LayoutCollection), nil
	case config.StoreSQLite:
		return repository.NewSQLiteStore(cfg.SQLitePath)
	case config.StoreMemory:
		return repository.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
