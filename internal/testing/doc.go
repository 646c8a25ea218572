// Package testing provides helpers for integration tests that run against a
// real PostgreSQL warehouse, either DWGATE_TEST_DSN or a testcontainer.
package testing
