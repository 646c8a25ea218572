package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// sqlSession adapts a dedicated database/sql connection to dwgate.Session.
type sqlSession struct {
	db   *sql.DB
	conn *sql.Conn
}

func (s *sqlSession) Exec(ctx context.Context, query string) error {
	_, err := s.conn.ExecContext(ctx, query)
	return err
}

func (s *sqlSession) QueryRow(ctx context.Context, query string) dwgate.Row {
	return &sqlRow{row: s.conn.QueryRowContext(ctx, query)}
}

// Close releases the connection and the underlying handle.
func (s *sqlSession) Close() error {
	return errors.Join(s.conn.Close(), s.db.Close())
}

type sqlRow struct {
	row *sql.Row
}

func (r *sqlRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return dwgate.ErrNoRows
	}
	return err
}

// openSQLSession opens db through driverName and pins a single connection.
func openSQLSession(ctx context.Context, driverName, dsn string) (*sqlSession, error) {
	handle, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	handle.SetMaxOpenConns(1)

	conn, err := handle.Conn(ctx)
	if err != nil {
		handle.Close()
		return nil, err
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		handle.Close()
		return nil, err
	}

	return &sqlSession{db: handle, conn: conn}, nil
}
