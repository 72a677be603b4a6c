// Package gameinfo persists match documents in a single shared JSON
// file, one block per field, as read and written by the scoreboard
// tooling. Writers are excluded with a sidecar lock file and every
// write replaces the document atomically, so concurrent tools always
// observe a complete document.
package gameinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/apitofinal/shootout/internal/errors"
	"github.com/apitofinal/shootout/internal/platform/timeouts"
	"github.com/apitofinal/shootout/internal/storage"
)

// MaxFields caps how many field blocks one document carries.
const MaxFields = 2

const penaltiesKey = "penalties"

// defaultFieldState seeds the scoreboard keys of a field block so
// downstream consumers always find them present.
var defaultFieldState = map[string]json.RawMessage{
	"home_name":  json.RawMessage(`""`),
	"home_abbr":  json.RawMessage(`""`),
	"away_name":  json.RawMessage(`""`),
	"away_abbr":  json.RawMessage(`""`),
	"home_score": json.RawMessage(`0`),
	"away_score": json.RawMessage(`0`),
	"half":       json.RawMessage(`"1ª Parte"`),
	"timer":      json.RawMessage(`"00:00"`),
	"extra":      json.RawMessage(`"00:00"`),
	"max":        json.RawMessage(`"45:00"`),
}

type document map[string]json.RawMessage

type fieldBlock map[string]json.RawMessage

// Store reads and writes one shared gameinfo document.
type Store struct {
	path         string
	lockTimeout  time.Duration
	lockInterval time.Duration
}

// Open prepares a store for the document at path, creating the parent
// directory and an empty document when missing.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("document path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create document dir: %w", err)
		}
	}

	store := &Store{
		path:         cleanPath,
		lockTimeout:  timeouts.DocumentLock,
		lockInterval: timeouts.DocumentLockPoll,
	}
	if _, err := os.Stat(cleanPath); errors.Is(err, os.ErrNotExist) {
		if err := store.writeDocument(document{}); err != nil {
			return nil, fmt.Errorf("create document: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	return store, nil
}

// Path returns the document location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// NormalizeField validates a field key and returns its canonical
// field_<n> form.
func NormalizeField(field string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(field))
	rest := strings.TrimPrefix(trimmed, "field_")
	if rest == trimmed {
		return "", invalidField(field)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > MaxFields {
		return "", invalidField(field)
	}
	return "field_" + strconv.Itoa(n), nil
}

func invalidField(field string) error {
	return apperrors.WithMetadata(apperrors.CodeStorageInvalidField, "invalid field key", map[string]string{
		"Field": field,
		"Max":   strconv.Itoa(MaxFields),
	})
}

// LoadPenalties reads the penalties record of one field block.
func (s *Store) LoadPenalties(ctx context.Context, field string) (storage.PenaltyRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.PenaltyRecord{}, err
	}
	if s == nil {
		return storage.PenaltyRecord{}, fmt.Errorf("storage is not configured")
	}
	key, err := NormalizeField(field)
	if err != nil {
		return storage.PenaltyRecord{}, err
	}

	doc, err := s.readDocument()
	if err != nil {
		return storage.PenaltyRecord{}, err
	}
	rawBlock, ok := doc[key]
	if !ok {
		return storage.PenaltyRecord{}, notFound(key)
	}
	block, err := decodeBlock(rawBlock, key)
	if err != nil {
		return storage.PenaltyRecord{}, err
	}
	rawRecord, ok := block[penaltiesKey]
	if !ok {
		return storage.PenaltyRecord{}, notFound(key)
	}

	var record storage.PenaltyRecord
	if err := json.Unmarshal(rawRecord, &record); err != nil {
		return storage.PenaltyRecord{}, apperrors.Wrap(apperrors.CodeStorageInvalidRecord, "decode penalties record", err)
	}
	return record, nil
}

// SavePenalties merges the penalties record into one field block. The
// document is re-read under the lock so blocks written by other tools
// since our last read are preserved.
func (s *Store) SavePenalties(ctx context.Context, field string, record storage.PenaltyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("storage is not configured")
	}
	key, err := NormalizeField(field)
	if err != nil {
		return err
	}

	release, err := s.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer release()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	block := fieldBlock{}
	if rawBlock, ok := doc[key]; ok {
		if block, err = decodeBlock(rawBlock, key); err != nil {
			return err
		}
	}
	seedDefaults(block)

	rawRecord, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode penalties record: %w", err)
	}
	block[penaltiesKey] = rawRecord

	rawBlock, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("encode field block: %w", err)
	}
	doc[key] = rawBlock

	return s.writeDocument(doc)
}

func (s *Store) readDocument() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document{}, nil
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return document{}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageInvalidRecord, "decode document", err)
	}
	return doc, nil
}

// writeDocument replaces the document through a temp file rename so a
// crash mid-write never leaves a truncated document behind.
func (s *Store) writeDocument(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// acquireLock takes the sidecar lock file, polling until the holder
// releases it or the timeout passes.
func (s *Store) acquireLock(ctx context.Context) (func(), error) {
	lockPath := s.path + ".lock"
	deadline := time.Now().Add(s.lockTimeout)
	for {
		lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			_ = lockFile.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create lock file: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, apperrors.WithMetadata(apperrors.CodeStorageLockTimeout, "document lock timeout", map[string]string{"Path": lockPath})
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.lockInterval):
		}
	}
}

func decodeBlock(raw json.RawMessage, key string) (fieldBlock, error) {
	var block fieldBlock
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeStorageInvalidRecord, "decode field block", map[string]string{"Field": key}, err)
	}
	return block, nil
}

func seedDefaults(block fieldBlock) {
	for key, value := range defaultFieldState {
		if _, ok := block[key]; !ok {
			block[key] = value
		}
	}
}

func notFound(field string) error {
	return apperrors.WithMetadata(apperrors.CodeNotFound, "penalties record not found", map[string]string{"Field": field})
}

var _ storage.MatchStore = (*Store)(nil)
