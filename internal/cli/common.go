package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/vvka-141/dwgate/internal/db"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// requireEnvironment rejects selectors outside the closed set before any
// configuration or warehouse work happens.
func requireEnvironment(env string) error {
	if !dwgate.IsKnownEnvironment(env) {
		return fmt.Errorf("environment %q is not one of %v: %w", env, dwgate.Environments, dwgate.ErrUnknownEnvironment)
	}
	return nil
}

// newConnector loads warehouse settings from the process environment once
// and builds the connector for the configured driver.
func newConnector(logger dwgate.Logger) (dwgate.Connector, error) {
	// A missing .env file is not an error; existing variables win.
	_ = godotenv.Load()

	settings, err := db.LoadSettings(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Warehouse: %s", settings)

	return db.NewConnector(settings)
}

// newRunID returns the identifier used to correlate the log lines of one invocation.
func newRunID() string {
	return uuid.New().String()
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(action string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintf(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling %s...\n", action)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
