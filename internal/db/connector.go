package db

import (
	"fmt"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// NewConnector is a factory function that creates the appropriate Connector
// for the configured driver. Missing credentials are reported here, before
// any network activity.
func NewConnector(settings *Settings) (dwgate.Connector, error) {
	if settings == nil {
		return nil, fmt.Errorf("warehouse settings are required: %w", dwgate.ErrInvalidConfig)
	}

	var (
		connector dwgate.Connector
		err       error
	)
	switch settings.Driver {
	case DriverSnowflake:
		connector, err = NewSnowflakeConnector(settings.Snowflake)
	case DriverPostgres:
		connector, err = newPostgresConnector(settings)
	case DriverClickHouse:
		connector, err = NewClickHouseConnector(settings.DSN)
	default:
		return nil, fmt.Errorf("driver %q: %w", settings.Driver, dwgate.ErrUnsupportedDriver)
	}
	if err != nil {
		return nil, err
	}
	return connector, nil
}

func newPostgresConnector(settings *Settings) (*PostgresConnector, error) {
	if settings.Auth != AuthAWSIAM {
		return NewPostgresConnector(settings.DSN, nil)
	}

	cfg, err := parsePostgresDSN(settings.DSN)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	tokenProvider, err := NewAWSIAMTokenProvider(endpoint, settings.AWSRegion, cfg.User)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS IAM token provider: %w: %w", err, dwgate.ErrConnectionFailed)
	}

	return NewPostgresConnector(settings.DSN, tokenProvider)
}

// missingVariables returns an error naming every empty required variable.
func missingVariables(vars map[string]string, order []string) error {
	var missing []string
	for _, name := range order {
		if vars[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required environment variable(s): %s: %w",
		strings.Join(missing, ", "), dwgate.ErrConnectionFailed)
}

// wrapConnectionError wraps raw driver connection errors with actionable guidance.
func wrapConnectionError(err error, driver, target string) error {
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused by %s %s

Possible causes:
  - The server is not running
  - Wrong host or port
  - Firewall blocking the connection

Original error: %w`, dwgate.ErrConnectionFailed, driver, target, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`%w: cannot resolve %s host %s

Possible causes:
  - Hostname or account identifier is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %w`, dwgate.ErrConnectionFailed, driver, target, err)

	case strings.Contains(errStr, "password authentication failed") ||
		strings.Contains(errStr, "incorrect username or password") ||
		strings.Contains(errStr, "authentication failed"):
		return fmt.Errorf(`%w: authentication failed for %s %s

Possible causes:
  - Wrong user or password in the environment (or .env file)
  - The user is locked or does not exist
  - The role is not granted to the user

Original error: %w`, dwgate.ErrConnectionFailed, driver, target, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection to %s %s timed out

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Firewall silently dropping packets

Original error: %w`, dwgate.ErrConnectionFailed, driver, target, err)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls") || strings.Contains(errStr, "certificate"):
		return fmt.Errorf(`%w: SSL/TLS error connecting to %s %s

Possible causes:
  - Server requires TLS but the DSN disables it
  - Certificate verification failed

Original error: %w`, dwgate.ErrConnectionFailed, driver, target, err)

	default:
		return fmt.Errorf("%w: %s %s: %w", dwgate.ErrConnectionFailed, driver, target, err)
	}
}
