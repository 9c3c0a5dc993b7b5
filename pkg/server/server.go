package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fin-tools/finhealth/pkg/handlers/demo"
	finhealthmiddleware "github.com/fin-tools/finhealth/pkg/server/middleware"
)

// DemoAPI serves the canned analysis backend used for local development
// and client integration tests.
type DemoAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// ConfigureRouter wires the demo handler onto the three backend routes
// the client knows about.
func ConfigureRouter(logger *zerolog.Logger) *chi.Mux {
	handler := demo.NewHandler()

	router := chi.NewRouter()
	router.Use(finhealthmiddleware.Logger(logger))
	router.Use(chimiddleware.Recoverer)

	router.Post("/upload", handler.Upload)
	router.Post("/chat", handler.Chat)
	router.Get("/report/{reportID}", handler.Report)

	return router
}

func NewDemoAPI(logger zerolog.Logger, config Config) *DemoAPI {
	router := ConfigureRouter(&logger)
	return &DemoAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (d *DemoAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		d.logger.Info().Str("addr", d.server.Addr).Msg("starting demo backend")
		serverErrors <- d.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		d.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := d.server.Shutdown(ctx)
		if err != nil {
			d.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = d.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
