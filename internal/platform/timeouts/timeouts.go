// Package timeouts defines shared timeout constants used across the
// runtime. Centralizing these values prevents drift between components and
// makes the durations discoverable.
package timeouts

import "time"

// DocumentLock caps the wait for the shared match document lock.
const DocumentLock = 2 * time.Second

// DocumentLockPoll is the interval between match document lock attempts.
const DocumentLockPoll = 20 * time.Millisecond

// FinalSave caps the last match document write during shutdown.
const FinalSave = 5 * time.Second

// OTelShutdown limits how long telemetry export waits during shutdown.
const OTelShutdown = 5 * time.Second
