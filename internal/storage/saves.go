package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pixil98/go-adventure/internal/state"
)

// SaveStore persists opaque game state snapshots under named slots.
// The engine treats a slot as a whole: a load replaces the session state
// wholesale.
type SaveStore interface {
	Save(ctx context.Context, slot string, gs *state.GameState) error
	Load(ctx context.Context, slot string) (*state.GameState, error)
	Delete(ctx context.Context, slot string) error
	List(ctx context.Context) ([]string, error)
}

// ErrSaveNotFound is returned when a slot has no snapshot.
var ErrSaveNotFound = fmt.Errorf("save not found")

// NormalizeSlot lowercases a slot name and strips characters that would be
// unsafe in file names or redis keys.
func NormalizeSlot(slot string) string {
	slot = strings.ToLower(strings.TrimSpace(slot))
	var b strings.Builder
	for _, r := range slot {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteRune('-')
		}
	}
	return b.String()
}

// FileSaveStore keeps one JSON file per slot under a directory.
type FileSaveStore struct {
	path string
}

func NewFileSaveStore(path string) (*FileSaveStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("checking save path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("save path %s is not a directory", path)
	}
	return &FileSaveStore{path: path}, nil
}

func (s *FileSaveStore) Save(_ context.Context, slot string, gs *state.GameState) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("marshalling save: %w", err)
	}
	return atomicWrite(s.filePath(slot), data, 0644)
}

func (s *FileSaveStore) Load(_ context.Context, slot string) (*state.GameState, error) {
	data, err := os.ReadFile(s.filePath(slot))
	if os.IsNotExist(err) {
		return nil, ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading save: %w", err)
	}

	gs := &state.GameState{}
	if err := json.Unmarshal(data, gs); err != nil {
		return nil, fmt.Errorf("unmarshalling save: %w", err)
	}
	return gs, nil
}

func (s *FileSaveStore) Delete(_ context.Context, slot string) error {
	err := os.Remove(s.filePath(slot))
	if os.IsNotExist(err) {
		return ErrSaveNotFound
	}
	return err
}

func (s *FileSaveStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}

	var slots []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		slots = append(slots, strings.TrimSuffix(e.Name(), ".json"))
	}
	slices.Sort(slots)
	return slots, nil
}

func (s *FileSaveStore) filePath(slot string) string {
	return filepath.Join(s.path, fmt.Sprintf("%s.json", NormalizeSlot(slot)))
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
