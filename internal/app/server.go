package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// start запускает HTTP сервер и останавливает его после отмены ctx
func (a *App) start(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.Address(),
		Handler:           a.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(a.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening",
			zap.String("address", fmt.Sprintf("http://localhost:%d", a.config.Port)),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		a.logger.Error("Server failed", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
