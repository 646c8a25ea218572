package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// withSession opens one warehouse session, runs fn with it and closes the
// session whatever fn returns. A close failure is logged, never returned:
// the outcome of fn is the outcome of the run.
func withSession(ctx context.Context, connector dwgate.Connector, logger dwgate.Logger, fn func(dwgate.Session) error) error {
	session, err := connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to open warehouse session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Error("failed to close warehouse session: %v", closeErr)
			return
		}
		logger.Verbose("Warehouse session closed")
	}()

	logger.Verbose("Warehouse session opened")
	return fn(session)
}

// withTimeout bounds ctx by d when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
