package app

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const shutdownTimeout = 30 * time.Second

// Server builds the HTTP server for the configured port
func (a *App) Server() *http.Server {
	// WriteTimeout has to cover a full conversion including the model call
	return &http.Server{
		Addr:         ":" + a.Config.Server.Port,
		Handler:      a.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: a.Config.Generation.Timeout + 2*time.Minute,
		IdleTimeout:  60 * time.Second,
	}
}

// Serve runs the HTTP server until ctx is done, then shuts it down gracefully
func (a *App) Serve(ctx context.Context) error {
	srv := a.Server()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	a.Logger.Info("Server stopped", nil)
	return nil
}
