// Package bootstrap runs a long-lived process until it fails or is signalled,
// then shuts its resources down in reverse order of registration.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds the time all shutdown hooks may take together.
const DefaultShutdownTimeout = 10 * time.Second

type ShutdownHook func(ctx context.Context) error

type App struct {
	shutdownTimeout time.Duration

	mu    sync.Mutex
	hooks []namedHook
}

type namedHook struct {
	name string
	fn   ShutdownHook
}

func New() *App {
	return &App{shutdownTimeout: DefaultShutdownTimeout}
}

// WithShutdownTimeout changes the time budget of the shutdown hooks.
func (a *App) WithShutdownTimeout(d time.Duration) *App {
	a.shutdownTimeout = d
	return a
}

// AddShutdownHook registers fn under name. Hooks run last in, first out.
func (a *App) AddShutdownHook(name string, fn ShutdownHook) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, namedHook{name: name, fn: fn})
}

// Run calls run until it returns or the process receives SIGINT or SIGTERM.
// Shutdown hooks run in both cases; the error of run comes first.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Default().Info("shutting down", "reason", context.Cause(ctx))
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.shutdownTimeout)
	defer cancel()
	return errors.Join(runErr, a.shutdown(shutdownCtx))
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := append([]namedHook(nil), a.hooks...)
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].fn(ctx); err != nil {
			slog.Default().Error("shutdown hook failed",
				"hook", hooks[i].name,
				"error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
