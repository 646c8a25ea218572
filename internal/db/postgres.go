package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// PostgresConnector opens a single pgx connection per session.
// When a TokenProvider is set, a fresh token replaces the DSN password on
// every Connect.
type PostgresConnector struct {
	dsn           string
	tokenProvider TokenProvider
}

// NewPostgresConnector validates the DSN and returns a connector.
// tokenProvider may be nil for password authentication.
func NewPostgresConnector(dsn string, tokenProvider TokenProvider) (*PostgresConnector, error) {
	if _, err := parsePostgresDSN(dsn); err != nil {
		return nil, err
	}
	return &PostgresConnector{dsn: dsn, tokenProvider: tokenProvider}, nil
}

func parsePostgresDSN(dsn string) (*pgx.ConnConfig, error) {
	if err := missingVariables(map[string]string{EnvDSN: dsn}, []string{EnvDSN}); err != nil {
		return nil, err
	}
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w: %w", EnvDSN, err, dwgate.ErrConnectionFailed)
	}
	return cfg, nil
}

// Connect opens the connection and verifies it with a ping.
func (c *PostgresConnector) Connect(ctx context.Context) (dwgate.Session, error) {
	cfg, err := parsePostgresDSN(c.dsn)
	if err != nil {
		return nil, err
	}

	if c.tokenProvider != nil {
		token, _, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire token from %s: %w: %w", c.tokenProvider, err, dwgate.ErrConnectionFailed)
		}
		cfg.Password = token
	}

	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, wrapConnectionError(err, DriverPostgres, target)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, wrapConnectionError(err, DriverPostgres, target)
	}

	return &pgSession{conn: conn}, nil
}

type pgSession struct {
	conn *pgx.Conn
}

func (s *pgSession) Exec(ctx context.Context, query string) error {
	_, err := s.conn.Exec(ctx, query)
	return err
}

func (s *pgSession) QueryRow(ctx context.Context, query string) dwgate.Row {
	return &pgRow{row: s.conn.QueryRow(ctx, query)}
}

// Close uses a fresh context so the connection is released even when the
// run's context has already been cancelled.
func (s *pgSession) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.conn.Close(ctx)
}

type pgRow struct {
	row pgx.Row
}

func (r *pgRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return dwgate.ErrNoRows
	}
	return err
}

var _ dwgate.Connector = (*PostgresConnector)(nil)
