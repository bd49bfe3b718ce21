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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/averyk/miniblog/internal/auth"
	"github.com/averyk/miniblog/internal/config"
	"github.com/averyk/miniblog/internal/handlers"
	"github.com/averyk/miniblog/internal/logging"
	"github.com/averyk/miniblog/internal/render"
	"github.com/averyk/miniblog/internal/store"
)

func main() {
	log := logging.NewDefault()
	ctx := context.Background()

	// A .env file is optional; the real environment always wins.
	if err := godotenv.Load(); err == nil {
		log.Info(ctx, "loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "configuration error", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error(ctx, "database unavailable", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "database connected")

	renderer, err := render.New()
	if err != nil {
		log.Error(ctx, "template error", "error", err)
		os.Exit(1)
	}

	sessions := auth.NewSessions(cfg.SecretKey)
	h := handlers.New(st, sessions, renderer, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Handle("/static/*", http.StripPrefix("/static/", render.Static()))
	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server failed", "error", err)
			os.Exit(1)
		}
	case <-stop.Done():
		log.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(ctx, "shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
