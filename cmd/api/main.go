package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/inkwell/inkwell-api/internal/config"
	"github.com/inkwell/inkwell-api/internal/handler"
	"github.com/inkwell/inkwell-api/internal/middleware"
	"github.com/inkwell/inkwell-api/internal/repository"
	"github.com/inkwell/inkwell-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	itemHandler := handler.NewItemHandler(service.NewItemService(itemRepo))
	blogHandler := handler.NewBlogHandler(service.NewBlogService(blogRepo))

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Open routes.
	r.Get("/api", itemHandler.HandleList)
	r.Post("/api", itemHandler.HandleCreate)
	r.Get("/blogs", blogHandler.HandleList)
	r.Get("/blogs/{id}", blogHandler.HandleGet)

	// Credential endpoints, rate-limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/signup", authHandler.HandleSignup)
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	// Protected routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/auth/me", authHandler.HandleMe)
		r.Get("/users", userHandler.HandleList)
		r.Get("/users/{id}", userHandler.HandleGet)
		r.Post("/blogs", blogHandler.HandleCreate)
	})

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

	slog.Info("server stopped")
}
