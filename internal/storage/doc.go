// Package storage defines the persistence interfaces for the shootout
// engine.
//
// The match document keeps one JSON block per field, including the
// penalties record consumed by the rules engine. Engine telemetry is
// journaled separately. Implementations of these interfaces (the
// shared gameinfo document, the sqlite journal) live in subpackages.
//
// # Error Types
//
// The package defines common error types used across storage
// implementations:
//   - ErrNotFound: Indicates a requested record is missing.
//   - ErrLockTimeout: Indicates the document lock could not be acquired.
package storage
