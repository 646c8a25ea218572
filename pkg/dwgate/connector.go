package dwgate

import "context"

// Connector opens warehouse sessions.
// Different implementations handle the supported warehouse drivers
// (Snowflake, PostgreSQL, ClickHouse).
type Connector interface {
	// Connect authenticates and opens a single warehouse session.
	// The caller must Close the returned session when done.
	Connect(ctx context.Context) (Session, error)
}

// Session is one authenticated warehouse session. Calls block until the
// warehouse responds. Implementations are not safe for concurrent use.
type Session interface {
	// Exec executes a single statement without returning rows.
	Exec(ctx context.Context, sql string) error

	// QueryRow executes a query that is expected to return at most one row.
	// Always returns a non-nil Row. Errors are deferred until Row's Scan method is called.
	QueryRow(ctx context.Context, sql string) Row

	// Close releases the session. It is safe to call more than once.
	Close() error
}

// Row represents a single row returned by QueryRow.
type Row interface {
	// Scan reads the values from the row into dest values.
	// Returns ErrNoRows if the query produced no row.
	Scan(dest ...any) error
}
