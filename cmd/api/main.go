package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/spendtrack/spendtrack-go/internal/config"
	"github.com/spendtrack/spendtrack-go/internal/handler"
	"github.com/spendtrack/spendtrack-go/internal/middleware"
	"github.com/spendtrack/spendtrack-go/internal/repository"
	"github.com/spendtrack/spendtrack-go/internal/service"
)

const (
	dbConnectAttempts = 5
	dbConnectDelay    = 5 * time.Second

	// Auth endpoints get a strict window; the rest of the API a loose one.
	authRateLimit   = 5
	apiRateLimit    = 100
	rateLimitWindow = 15 * time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db := connectDatabase(cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		dbStatus := "connected"
		if db == nil {
			dbStatus = "disconnected"
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
		})
	})

	if db == nil {
		// The original serves 503 for every API route when the database
		// is unreachable rather than refusing to start.
		slog.Warn("starting without database, API routes will return 503")
		r.HandleFunc("/api/*", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"database not available"}`))
		})
	} else {
		mountAPI(r, cfg, db)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	if db != nil {
		db.Close()
	}

	slog.Info("server stopped")
}

// connectDatabase opens the pool with a retry loop, runs migrations and the
// development seed. Returns nil when the database stays unreachable.
func connectDatabase(cfg config.Config) *sql.DB {
	ctx := context.Background()

	var db *sql.DB
	var err error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		slog.Info("connecting to database", "attempt", attempt, "of", dbConnectAttempts)
		db, err = repository.NewDB(ctx, cfg.DatabaseDSN)
		if err == nil {
			break
		}
		slog.Error("database connection failed", "attempt", attempt, "error", err)
		if attempt < dbConnectAttempts {
			time.Sleep(dbConnectDelay)
		}
	}
	if err != nil {
		return nil
	}

	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	if cfg.Env != "production" {
		if err := repository.Seed(ctx, db); err != nil {
			slog.Warn("seeding demo data failed", "error", err)
		}
	}

	return db
}

func mountAPI(r chi.Router, cfg config.Config, db *sql.DB) {
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	expenseRepo := repository.NewExpenseRepository(db)
	expenseService := service.NewExpenseService(expenseRepo)
	expenseHandler := handler.NewExpenseHandler(expenseService)

	prefRepo := repository.NewPreferenceRepository(db)
	prefService := service.NewPreferenceService(prefRepo)
	prefHandler := handler.NewPreferenceHandler(prefService)

	apiLimiter := middleware.RateLimit(apiRateLimit, rateLimitWindow)
	authLimiter := middleware.RateLimit(authRateLimit, rateLimitWindow)
	requireAuth := middleware.RequireAuth(cfg.JWTSecret, cfg.AuthCookie)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret, cfg.AuthCookie)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter)
			r.Post("/auth/register", authHandler.HandleRegister)
			r.Post("/auth/login", authHandler.HandleLogin)
		})

		r.With(optionalAuth).Get("/categories", expenseHandler.HandleCategories)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/auth/me", authHandler.HandleMe)

			r.Get("/expenses", expenseHandler.HandleList)
			r.Post("/expenses", expenseHandler.HandleCreate)
			r.Put("/expenses/{id}", expenseHandler.HandleUpdate)
			r.Delete("/expenses/{id}", expenseHandler.HandleDelete)

			r.Get("/user/preferences", prefHandler.HandleGet)
			r.Put("/user/preferences", prefHandler.HandleUpdate)
		})
	})
}
