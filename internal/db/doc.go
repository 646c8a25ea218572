// Package db opens warehouse sessions for deployments and validations.
//
// A Connector is chosen once per invocation from Settings, which are read
// from the process environment:
//
//   - snowflake (default): SNOWFLAKE_USER, SNOWFLAKE_PASSWORD, SNOWFLAKE_ACCOUNT,
//     SNOWFLAKE_ROLE, SNOWFLAKE_WAREHOUSE
//   - postgres: DWGATE_DSN, with DWGATE_AUTH=aws-iam and AWS_REGION for RDS IAM
//   - clickhouse: DWGATE_DSN
//
// Each Connect call opens exactly one dedicated connection. There is no pool
// and no retry: statements run in auto-commit mode on that connection until
// the session is closed. A query that returns no row reports dwgate.ErrNoRows
// from Row.Scan regardless of driver.
package db
