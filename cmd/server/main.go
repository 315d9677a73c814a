package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/brokerline/docengine/docs"
	"github.com/brokerline/docengine/intake"
	"github.com/brokerline/docengine/internal/logger"
)

type Server struct {
	engine *docs.Engine
	store  intake.Store
	db     *sql.DB // nil when running on the in-memory store
	router *chi.Mux
}

// NewServer wires the engine and store into an HTTP server. db may be
// nil; it is only used by the health check.
func NewServer(engine *docs.Engine, store intake.Store, db *sql.DB) *Server {
	s := &Server{
		engine: engine,
		store:  store,
		db:     db,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/api/v1/health", s.handleHealth)

	r.Post("/api/v1/evaluate", s.handleEvaluate)
	r.Get("/api/v1/documents", s.handleListDocuments)

	r.Route("/api/v1/intakes", func(r chi.Router) {
		r.Get("/", s.handleListIntakes)
		r.Post("/", s.handleCreateIntake)

		r.Route("/{intakeId}", func(r chi.Router) {
			r.Get("/", s.handleGetIntake)
			r.Delete("/", s.handleDeleteIntake)

			r.Put("/uploads/{docId}", s.handleMarkUploaded)
			r.Delete("/uploads/{docId}", s.handleClearUploaded)
		})
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func main() {
	engine, err := docs.NewDefaultEngine()
	if err != nil {
		logger.Fatal("Failed to build document engine", "error", err)
	}

	var store intake.Store
	var db *sql.DB

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL != "" {
		db, err = sql.Open("postgres", databaseURL)
		if err != nil {
			logger.Fatal("Failed to open database", "error", err)
		}
		if err := db.Ping(); err != nil {
			logger.Fatal("Failed to ping database", "error", err)
		}
		defer db.Close()
		store = intake.NewPostgresStore(db)
		logger.Info("Using PostgreSQL intake store")
	} else {
		store = intake.NewInMemoryStore()
		logger.Warn("DATABASE_URL not set, using in-memory intake store; intakes will not survive a restart")
	}

	server := NewServer(engine, store, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", port, "catalogSize", engine.Catalog().Len())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if err := logger.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	}

	logger.Info("Server stopped")
}
