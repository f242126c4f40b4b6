package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"DBDashboard/internal/api/router"
	"DBDashboard/internal/app"
	"DBDashboard/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RegisterCleanupFunc adds f to the functions run after shutdown, in registration order
func RegisterCleanupFunc(f func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, f)
}

func runCleanup() {
	cleanupMu.Lock()
	funcs := cleanupFuncs
	cleanupFuncs = nil
	cleanupMu.Unlock()

	for _, f := range funcs {
		f()
	}
}

// HandleSignals blocks until SIGINT or SIGTERM, then shuts down the server and the application
func HandleSignals(application *app.Application, builder *router.Builder) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		sig := <-sigChan
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			logger.Info("Received termination signal, shutting down...",
				logger.String("signal", sig.String()))

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := builder.Shutdown(ctx); err != nil {
				logger.Warn("Forced HTTP server shutdown", logger.Err(err))
			}
			cancel()

			application.Shutdown()
			runCleanup()
			os.Exit(0)
		case syscall.SIGHUP:
			// Sample data and selections are fixed for the lifetime of the process
			logger.Info("Received SIGHUP signal, restart the service to apply configuration changes")
		}
	}
}
