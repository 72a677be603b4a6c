// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Shootout errors
	CodeShootoutInvalidConfiguration Code = "SHOOTOUT_INVALID_CONFIGURATION"
	CodeShootoutIndexOutOfRange      Code = "SHOOTOUT_INDEX_OUT_OF_RANGE"
	CodeShootoutInvalidOperation     Code = "SHOOTOUT_INVALID_OPERATION"
	CodeShootoutInvalidTeam          Code = "SHOOTOUT_INVALID_TEAM"
	CodeShootoutInvalidOutcome       Code = "SHOOTOUT_INVALID_OUTCOME"
	CodeShootoutInvalidStage         Code = "SHOOTOUT_INVALID_STAGE"

	// Storage errors
	CodeNotFound              Code = "NOT_FOUND"
	CodeStorageInvalidRecord  Code = "STORAGE_INVALID_RECORD"
	CodeStorageInvalidField   Code = "STORAGE_INVALID_FIELD"
	CodeStorageLockTimeout    Code = "STORAGE_LOCK_TIMEOUT"
	CodeStorageNotInitialized Code = "STORAGE_NOT_INITIALIZED"
)
