// Package testinfra starts disposable warehouses for integration tests.
package testinfra
