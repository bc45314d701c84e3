package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-adventure/internal/state"
)

func newTestRedisStore(t *testing.T) *RedisSaveStore {
	t.Helper()

	mr := miniredis.RunT(t)
	store := NewRedisSaveStore(mr.Addr())
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("pinging miniredis: %v", err)
	}
	return store
}

func TestRedisSaveStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	gs := state.New("cellar")
	gs.SetFlag("lampOn")
	gs.SetContents("box", []string{"key"})
	gs.Turns = 12

	if err := store.Save(ctx, "Frodo", gs); err != nil {
		t.Fatalf("saving: %v", err)
	}

	loaded, err := store.Load(ctx, "frodo")
	if err != nil {
		t.Fatalf("loading: %v", err)
	}

	testutil.AssertEqual(t, "scene", loaded.CurrentScene, "cellar")
	testutil.AssertEqual(t, "flag", loaded.HasFlag("lampOn"), true)
	testutil.AssertEqual(t, "contents", len(loaded.Contents("box")), 1)
	testutil.AssertEqual(t, "turns", loaded.Turns, 12)
}

func TestRedisSaveStore_LoadMissing(t *testing.T) {
	store := newTestRedisStore(t)

	_, err := store.Load(context.Background(), "nope")
	if !errors.Is(err, ErrSaveNotFound) {
		t.Errorf("expected ErrSaveNotFound, got %v", err)
	}
}

func TestRedisSaveStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	for _, slot := range []string{"sam", "frodo"} {
		if err := store.Save(ctx, slot, state.New("kitchen")); err != nil {
			t.Fatalf("saving %s: %v", slot, err)
		}
	}

	slots, err := store.List(ctx)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}

	testutil.AssertEqual(t, "count", len(slots), 2)
	testutil.AssertEqual(t, "first", slots[0], "frodo")
	testutil.AssertEqual(t, "second", slots[1], "sam")
}

func TestRedisSaveStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	if err := store.Save(ctx, "frodo", state.New("kitchen")); err != nil {
		t.Fatalf("saving: %v", err)
	}

	if err := store.Delete(ctx, "frodo"); err != nil {
		t.Fatalf("deleting: %v", err)
	}

	if err := store.Delete(ctx, "frodo"); !errors.Is(err, ErrSaveNotFound) {
		t.Errorf("expected ErrSaveNotFound, got %v", err)
	}
}
