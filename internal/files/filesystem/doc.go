// Package filesystem provides a small filesystem abstraction for reading
// project documents and SQL artifacts.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Missing paths are reported with errors that match fs.ErrNotExist in both
// implementations, so callers can tell "absent" from "unreadable".
package filesystem
