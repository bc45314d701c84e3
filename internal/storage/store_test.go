package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockStoreSpec implements ValidatingSpec for testing FileStore
type mockStoreSpec struct {
	Name    string `json:"name"`
	Value   int    `json:"value"`
	invalid bool
}

func (s *mockStoreSpec) Validate() error {
	if s.invalid {
		return fmt.Errorf("invalid spec")
	}
	return nil
}

func writeAsset(t *testing.T, dir, id string, spec *mockStoreSpec) {
	t.Helper()

	asset := Asset[*mockStoreSpec]{
		Version:    1,
		Identifier: Identifier(id),
		Spec:       spec,
	}
	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("marshalling asset: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, id+".json"), data, 0644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}
}

func TestNewFileStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "path", store.path, tmpDir)
	testutil.AssertEqual(t, "records length", len(store.records), 0)
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*mockStoreSpec]("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewFileStore_WithExistingAssets(t *testing.T) {
	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "item-1", &mockStoreSpec{Name: "First", Value: 1})
	writeAsset(t, tmpDir, "item-2", &mockStoreSpec{Name: "Second", Value: 2})

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "records length", len(store.GetAll()), 2)
	testutil.AssertEqual(t, "first name", store.Get("item-1").Name, "First")
	testutil.AssertEqual(t, "second value", store.Get("item-2").Value, 2)
}

func TestFileStore_GetMissing(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Get("nope") != nil {
		t.Error("expected nil for missing record")
	}
}

func TestNewFileStore_InvalidAsset(t *testing.T) {
	tmpDir := t.TempDir()

	// Version 0 fails envelope validation.
	asset := Asset[*mockStoreSpec]{Identifier: "bad", Spec: &mockStoreSpec{Name: "Bad"}}
	data, _ := json.Marshal(asset)
	if err := os.WriteFile(filepath.Join(tmpDir, "bad.json"), data, 0644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}

	_, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err == nil {
		t.Error("expected validation error")
	}
}

func TestMapStore(t *testing.T) {
	store := NewMapStore(map[string]*mockStoreSpec{
		"item-1": {Name: "First"},
	})

	testutil.AssertEqual(t, "hit", store.Get("item-1").Name, "First")
	if store.Get("item-2") != nil {
		t.Error("expected nil for missing record")
	}
	testutil.AssertEqual(t, "all", len(store.GetAll()), 1)
}
