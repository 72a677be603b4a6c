package gameinfo

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/apitofinal/shootout/internal/errors"
	"github.com/apitofinal/shootout/internal/storage"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "gameinfo.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func sampleRecord() storage.PenaltyRecord {
	winner := "home"
	return storage.PenaltyRecord{
		Initial: 5,
		Starts:  "home",
		Stage:   "done",
		Home:    []string{"goal", "goal", "goal", "pending", "pending"},
		Away:    []string{"fail", "fail", "fail", "pending", "pending"},
		Winner:  &winner,
	}
}

func TestOpenCreatesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gameinfo.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if store.Path() != path {
		t.Fatalf("expected path %q, got %q", path, store.Path())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("expected a valid JSON document, got %q: %v", data, err)
	}
	if len(doc) != 0 {
		t.Fatalf("expected an empty document, got %v", doc)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestNormalizeField(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "field_1", want: "field_1"},
		{input: " FIELD_2 ", want: "field_2"},
		{input: "field_01", want: "field_1"},
		{input: "field_3", wantErr: true},
		{input: "field_0", wantErr: true},
		{input: "field_", wantErr: true},
		{input: "pitch_1", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeField(tt.input)
			if tt.wantErr {
				if !apperrors.IsCode(err, apperrors.CodeStorageInvalidField) {
					t.Fatalf("expected invalid field error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize field: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadMissingRecordReturnsNotFound(t *testing.T) {
	store := openStore(t)

	_, err := store.LoadPenalties(context.Background(), "field_1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := openStore(t)
	record := sampleRecord()

	if err := store.SavePenalties(context.Background(), "field_1", record); err != nil {
		t.Fatalf("save penalties: %v", err)
	}

	loaded, err := store.LoadPenalties(context.Background(), "field_1")
	if err != nil {
		t.Fatalf("load penalties: %v", err)
	}
	if !reflect.DeepEqual(loaded, record) {
		t.Fatalf("expected %+v, got %+v", record, loaded)
	}
}

func TestSaveKeepsOtherFieldBlocks(t *testing.T) {
	store := openStore(t)
	first := sampleRecord()
	second := sampleRecord()
	second.Stage = "initial"
	second.Winner = nil
	second.Next = &storage.NextKickRecord{Team: "away", Index: 3}

	if err := store.SavePenalties(context.Background(), "field_1", first); err != nil {
		t.Fatalf("save field_1: %v", err)
	}
	if err := store.SavePenalties(context.Background(), "field_2", second); err != nil {
		t.Fatalf("save field_2: %v", err)
	}

	loadedFirst, err := store.LoadPenalties(context.Background(), "field_1")
	if err != nil {
		t.Fatalf("load field_1: %v", err)
	}
	loadedSecond, err := store.LoadPenalties(context.Background(), "field_2")
	if err != nil {
		t.Fatalf("load field_2: %v", err)
	}
	if !reflect.DeepEqual(loadedFirst, first) {
		t.Fatalf("expected field_1 record preserved, got %+v", loadedFirst)
	}
	if !reflect.DeepEqual(loadedSecond, second) {
		t.Fatalf("expected field_2 record preserved, got %+v", loadedSecond)
	}
}

func TestSavePreservesSiblingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameinfo.json")
	seeded := `{
  "field_1": {
    "home_name": "Atlético",
    "home_score": 3,
    "custom_overlay": {"visible": true}
  }
}`
	if err := os.WriteFile(path, []byte(seeded), 0o644); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SavePenalties(context.Background(), "field_1", sampleRecord()); err != nil {
		t.Fatalf("save penalties: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	block, ok := doc["field_1"]
	if !ok {
		t.Fatalf("expected field_1 block, got %v", doc)
	}

	var homeName string
	if err := json.Unmarshal(block["home_name"], &homeName); err != nil || homeName != "Atlético" {
		t.Fatalf("expected home_name preserved, got %s (%v)", block["home_name"], err)
	}
	var homeScore int
	if err := json.Unmarshal(block["home_score"], &homeScore); err != nil || homeScore != 3 {
		t.Fatalf("expected home_score preserved, got %s (%v)", block["home_score"], err)
	}
	if _, ok := block["custom_overlay"]; !ok {
		t.Fatalf("expected unknown sibling key preserved")
	}

	// Missing scoreboard keys are seeded alongside the saved record.
	var maxTime string
	if err := json.Unmarshal(block["max"], &maxTime); err != nil || maxTime != "45:00" {
		t.Fatalf("expected max seeded to 45:00, got %s (%v)", block["max"], err)
	}
	var half string
	if err := json.Unmarshal(block["half"], &half); err != nil || half != "1ª Parte" {
		t.Fatalf("expected half seeded, got %s (%v)", block["half"], err)
	}
	if _, ok := block[penaltiesKey]; !ok {
		t.Fatalf("expected penalties record written")
	}
}

func TestSaveRejectsUnknownField(t *testing.T) {
	store := openStore(t)

	err := store.SavePenalties(context.Background(), "field_9", sampleRecord())
	if !apperrors.IsCode(err, apperrors.CodeStorageInvalidField) {
		t.Fatalf("expected invalid field error, got %v", err)
	}
}

func TestSaveLockTimeout(t *testing.T) {
	store := openStore(t)
	store.lockTimeout = 50 * time.Millisecond
	store.lockInterval = 5 * time.Millisecond

	lockPath := store.Path() + ".lock"
	if err := os.WriteFile(lockPath, nil, 0o644); err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	defer os.Remove(lockPath)

	err := store.SavePenalties(context.Background(), "field_1", sampleRecord())
	if !errors.Is(err, storage.ErrLockTimeout) {
		t.Fatalf("expected lock timeout, got %v", err)
	}
}

func TestSaveWaitsForLockRelease(t *testing.T) {
	store := openStore(t)

	lockPath := store.Path() + ".lock"
	if err := os.WriteFile(lockPath, nil, 0o644); err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	go func() {
		time.Sleep(60 * time.Millisecond)
		os.Remove(lockPath)
	}()

	if err := store.SavePenalties(context.Background(), "field_1", sampleRecord()); err != nil {
		t.Fatalf("expected save to wait for the lock, got %v", err)
	}
}

func TestSaveHonorsContextWhileLocked(t *testing.T) {
	store := openStore(t)

	lockPath := store.Path() + ".lock"
	if err := os.WriteFile(lockPath, nil, 0o644); err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	defer os.Remove(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := store.SavePenalties(ctx, "field_1", sampleRecord())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameinfo.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	_, err = store.LoadPenalties(context.Background(), "field_1")
	if !apperrors.IsCode(err, apperrors.CodeStorageInvalidRecord) {
		t.Fatalf("expected invalid record error, got %v", err)
	}
}
