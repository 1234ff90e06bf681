package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/notjagan/typechart/pkg/matchup"
)

const shutdownTimeout = 5 * time.Second

func NewRouter(resolver *matchup.Resolver) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	matchupHandler := NewMatchupHandler(resolver)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/types", matchupHandler.Types)

		r.Route("/matchup", func(r chi.Router) {
			r.Get("/", matchupHandler.Get)
			r.Get("/offense", matchupHandler.Offense)
			r.Get("/defense", matchupHandler.Defense)
			r.Get("/{category}", matchupHandler.Category)
		})
	})

	return r
}

// Serve runs the API on addr until ctx is done.
func Serve(ctx context.Context, addr string, resolver *matchup.Resolver) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(resolver),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Serving type chart API on %s.", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("api server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("error while shutting down api server: %w", err)
	}

	err = <-errs
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server stopped: %w", err)
	}

	return nil
}
