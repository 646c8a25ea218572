package db

import (
	"context"
	"fmt"

	"github.com/snowflakedb/gosnowflake"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// SnowflakeConnector opens Snowflake sessions with user/password credentials.
type SnowflakeConnector struct {
	config *gosnowflake.Config
}

// NewSnowflakeConnector validates the credentials and returns a connector.
// User, password and account are required; role and warehouse fall back to
// the user's defaults when empty.
func NewSnowflakeConnector(settings SnowflakeSettings) (*SnowflakeConnector, error) {
	err := missingVariables(map[string]string{
		EnvSnowflakeUser:     settings.User,
		EnvSnowflakePassword: settings.Password,
		EnvSnowflakeAccount:  settings.Account,
	}, []string{EnvSnowflakeUser, EnvSnowflakePassword, EnvSnowflakeAccount})
	if err != nil {
		return nil, err
	}

	return &SnowflakeConnector{
		config: &gosnowflake.Config{
			Account:   settings.Account,
			User:      settings.User,
			Password:  settings.Password,
			Role:      settings.Role,
			Warehouse: settings.Warehouse,
		},
	}, nil
}

// Connect opens one dedicated Snowflake connection.
func (c *SnowflakeConnector) Connect(ctx context.Context) (dwgate.Session, error) {
	dsn, err := gosnowflake.DSN(c.config)
	if err != nil {
		return nil, fmt.Errorf("invalid Snowflake settings: %w: %w", err, dwgate.ErrConnectionFailed)
	}

	session, err := openSQLSession(ctx, "snowflake", dsn)
	if err != nil {
		return nil, wrapConnectionError(err, DriverSnowflake, "account "+c.config.Account)
	}
	return session, nil
}

var _ dwgate.Connector = (*SnowflakeConnector)(nil)
