package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/finsync/pkg/handlers/dashboard"
	"github.com/de-tools/finsync/pkg/services/config"
	"github.com/de-tools/finsync/pkg/services/dashboard"

	finsyncmiddleware "github.com/de-tools/finsync/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Controller dashboard.Controller
	Presets    config.Presets
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter mounts the dashboard API under /api/v1.
func ConfigureRouter(config Config) http.Handler {
	h := handlers.NewHandler(config.Dependencies.Controller, config.Dependencies.Presets)

	router := chi.NewRouter()

	router.Use(finsyncmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.GetHistory)
			r.Get("/current", h.GetCurrentHistory)
			r.Post("/pages/next", h.NextPage)
			r.Post("/pages/prev", h.PrevPage)
			r.Get("/pages/{page}", h.GoToPage)
		})
		r.Get("/days/{date}", h.GetDay)
		r.Post("/days/{date}/export", h.ExportDay)
		r.Get("/compare", h.Compare)
		r.Get("/transactions", h.ListTransactions)
		r.Post("/exports", h.Export)
		r.Get("/presets", h.ListPresets)
		r.Post("/reload", h.Reload)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
