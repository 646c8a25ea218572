// Package scanner discovers the SQL artifacts of an environment.
//
// Artifacts live in a fixed folder taxonomy under scripts/<environment>/:
// ddl, stored_procedures, tasks and rbac. The scanner visits the folders in
// that order, lists the .sql files directly inside each one (subdirectories
// are not descended into), and returns them sorted lexically within their
// folder. Absent folders are skipped.
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
