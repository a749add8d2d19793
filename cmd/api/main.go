package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	chiadapter "filevault/internal/adapters/handlers/http/chi"
	filehandler "filevault/internal/adapters/handlers/http/chi/v1/file"
	sessionhandler "filevault/internal/adapters/handlers/http/chi/v1/session"
	natsbroker "filevault/internal/adapters/eventbroker/nats"
	"filevault/internal/adapters/repository/postgres"
	redisstore "filevault/internal/adapters/sessionstore/redis"
	miniostorage "filevault/internal/adapters/storage/minio"
	"filevault/internal/config"
	"filevault/internal/core/port"
	"filevault/internal/core/service/audit"
	"filevault/internal/core/service/upload"
	"filevault/internal/core/service/vault"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := miniostorage.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//sessions
	sessionStore, err := redisstore.NewStore(ctx, cfg.Session)
	if err != nil {
		logger.Error("failed to init session store", "error", err)
		os.Exit(1)
	}
	defer sessionStore.Close()

	//audit sink: postgres always, broker only when configured
	auditRepo := postgres.NewSQLAuditEventRepository(db)

	var publisher port.EventPublisher
	if cfg.NATS.URL != "" {
		natsPublisher, pubErr := natsbroker.NewPublisher(ctx, cfg.NATS, logger)
		if pubErr != nil {
			logger.Error("failed to init nats publisher", "error", pubErr)
			os.Exit(1)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	recorder := audit.NewRecorder(auditRepo, publisher, logger, cfg.Audit.BufferSize)
	defer recorder.Close()

	//services
	uploadService := upload.NewUploadService(minioAdapter, recorder, cfg.Upload)
	vaultService := vault.NewVaultService(minioAdapter, recorder, cfg.Upload)

	//http
	sessionHandler := sessionhandler.NewSessionHandlerV1(logger)
	fileHandler := filehandler.NewFileHandlerV1(uploadService, vaultService, cfg.Upload, logger)

	router := chiadapter.NewRouter(logger, sessionStore, sessionHandler, fileHandler, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
