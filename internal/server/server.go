// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/uwnav/hub/api"
	"github.com/uwnav/hub/internal/config"
	"github.com/uwnav/hub/internal/database"
	"github.com/uwnav/hub/internal/hubservice"
	"github.com/uwnav/hub/internal/monitoring"
	"github.com/uwnav/hub/internal/repository/mongodb"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         *database.MongoDB
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config: cfg,
		srv:    srv,
	}
}

// Start connects the store, wires the services and begins listening for
// requests. It blocks until a shutdown signal arrives.
func (s *Server) Start() error {
	s.monitoring = monitoring.NewService(monitoring.Config{
		LogLevel: s.config.Monitoring.LogLevel,
	})

	s.db = initMongoDB(s.config.MongoDB)
	s.hubservice = initializeHubService(s.db, s.monitoring, s.config.MongoDB.OperationTimeout)

	router := api.NewRouter(s.hubservice, s.db.Name())
	s.srv.Handler = buildMiddleware(router)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// buildMiddleware wraps the router with recovery, request logging and CORS
func buildMiddleware(router http.Handler) http.Handler {
	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
	handler = handlers.CombinedLoggingHandler(os.Stdout, handler)
	handler = handlers.RecoveryHandler()(handler)
	return handler
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the
// server, then disconnects the store.
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.db.Close(ctx); err != nil {
		nuts.L.Warnf("[Server] Error closing MongoDB connection: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// initializeHubService creates and configures the hub service
func initializeHubService(db *database.MongoDB, mon *monitoring.Service, opTimeout time.Duration) *hubservice.HubService {
	readings := mongodb.NewReadingRepository(db, opTimeout)

	svc := hubservice.New(readings, mon)
	if err := svc.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid hub service configuration: %v", err)
	}
	return svc
}

func initMongoDB(cfg config.MongoConfig) *database.MongoDB {
	db, err := database.NewMongoDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping MongoDB: %v", err)
	}
	return db
}
