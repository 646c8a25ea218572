package db

import (
	"fmt"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// Supported warehouse drivers.
const (
	DriverSnowflake  = "snowflake"
	DriverPostgres   = "postgres"
	DriverClickHouse = "clickhouse"
)

// Authentication methods for the postgres driver.
const (
	AuthPassword = "password"
	AuthAWSIAM   = "aws-iam"
)

// Environment variable names.
const (
	EnvDriver             = "DWGATE_DRIVER"
	EnvDSN                = "DWGATE_DSN"
	EnvAuth               = "DWGATE_AUTH"
	EnvAWSRegion          = "AWS_REGION"
	EnvSnowflakeUser      = "SNOWFLAKE_USER"
	EnvSnowflakePassword  = "SNOWFLAKE_PASSWORD"
	EnvSnowflakeAccount   = "SNOWFLAKE_ACCOUNT"
	EnvSnowflakeRole      = "SNOWFLAKE_ROLE"
	EnvSnowflakeWarehouse = "SNOWFLAKE_WAREHOUSE"
)

// SnowflakeSettings holds the Snowflake credentials.
type SnowflakeSettings struct {
	User      string
	Password  string
	Account   string
	Role      string
	Warehouse string
}

// Settings is the warehouse configuration for one invocation.
// It is built once by LoadSettings and never mutated afterwards.
type Settings struct {
	Driver    string
	DSN       string
	Auth      string
	AWSRegion string
	Snowflake SnowflakeSettings
}

// LoadSettings reads Settings through lookup, which is normally os.LookupEnv.
// Only the driver name is checked here; missing credentials are reported by
// NewConnector so that commands that never connect do not require them.
func LoadSettings(lookup func(string) (string, bool)) (*Settings, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	s := &Settings{
		Driver:    strings.ToLower(get(EnvDriver)),
		DSN:       get(EnvDSN),
		Auth:      strings.ToLower(get(EnvAuth)),
		AWSRegion: get(EnvAWSRegion),
		Snowflake: SnowflakeSettings{
			User:      get(EnvSnowflakeUser),
			Password:  get(EnvSnowflakePassword),
			Account:   get(EnvSnowflakeAccount),
			Role:      get(EnvSnowflakeRole),
			Warehouse: get(EnvSnowflakeWarehouse),
		},
	}

	if s.Driver == "" {
		s.Driver = DriverSnowflake
	}
	if s.Auth == "" {
		s.Auth = AuthPassword
	}

	switch s.Driver {
	case DriverSnowflake, DriverPostgres, DriverClickHouse:
	default:
		return nil, fmt.Errorf("%s=%q (expected %s, %s or %s): %w",
			EnvDriver, s.Driver, DriverSnowflake, DriverPostgres, DriverClickHouse, dwgate.ErrUnsupportedDriver)
	}

	switch s.Auth {
	case AuthPassword, AuthAWSIAM:
	default:
		return nil, fmt.Errorf("%s=%q (expected %s or %s): %w", EnvAuth, s.Auth, AuthPassword, AuthAWSIAM, dwgate.ErrInvalidConfig)
	}

	if s.Auth == AuthAWSIAM && s.Driver != DriverPostgres {
		return nil, fmt.Errorf("%s=%s is only supported with %s=%s: %w", EnvAuth, AuthAWSIAM, EnvDriver, DriverPostgres, dwgate.ErrInvalidConfig)
	}

	return s, nil
}

// String describes the settings without secrets, for verbose logging.
func (s *Settings) String() string {
	switch s.Driver {
	case DriverSnowflake:
		return fmt.Sprintf("snowflake(account=%s, user=%s, role=%s, warehouse=%s)",
			s.Snowflake.Account, s.Snowflake.User, s.Snowflake.Role, s.Snowflake.Warehouse)
	default:
		return fmt.Sprintf("%s(auth=%s)", s.Driver, s.Auth)
	}
}
