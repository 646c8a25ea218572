// Package files groups the artifact discovery sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory) for testability
//   - scanner: discovery of the SQL artifacts of an environment in deployment order
package files
