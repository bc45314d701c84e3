package state

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestGameState_Snapshot(t *testing.T) {
	s := New("kitchen")
	s.SetFlag("sackHas")
	s.SetContents("box", []string{"key"})
	s.MarkKnown("sack")
	s.AddScore(5)
	s.IncrementTurns()

	snap := s.Snapshot()

	// The snapshot matches the live state.
	testutil.AssertEqual(t, "scene", snap.CurrentScene, "kitchen")
	testutil.AssertEqual(t, "flag", snap.HasFlag("sackHas"), true)
	testutil.AssertEqual(t, "contents", len(snap.Contents("box")), 1)
	testutil.AssertEqual(t, "known", snap.IsKnown("sack"), true)
	testutil.AssertEqual(t, "score", snap.Score, 5)
	testutil.AssertEqual(t, "turns", snap.Turns, 1)

	// Mutating the live state after the snapshot must not leak into it.
	s.SetFlag("lampOn")
	s.SetContents("box", []string{"key", "coin"})
	s.MoveTo("cellar")

	testutil.AssertEqual(t, "snapshot flag isolated", snap.HasFlag("lampOn"), false)
	testutil.AssertEqual(t, "snapshot contents isolated", len(snap.Contents("box")), 1)
	testutil.AssertEqual(t, "snapshot scene isolated", snap.CurrentScene, "kitchen")
}

func TestGameState_Restore(t *testing.T) {
	s := New("kitchen")
	s.SetFlag("sackHas")
	s.AddScore(10)
	snap := s.Snapshot()

	s.MoveTo("cellar")
	s.RemoveFlag("sackHas")
	s.AddScore(-3)

	s.Restore(snap)

	testutil.AssertEqual(t, "scene restored", s.CurrentScene, "kitchen")
	testutil.AssertEqual(t, "flag restored", s.HasFlag("sackHas"), true)
	testutil.AssertEqual(t, "score restored", s.Score, 10)

	// The restored state must not alias the snapshot.
	s.SetFlag("lampOn")
	testutil.AssertEqual(t, "snapshot isolated after restore", snap.HasFlag("lampOn"), false)
}

func TestGameState_RoundTripsThroughJSON(t *testing.T) {
	s := New("kitchen")
	s.SetFlag("boxOpen")
	s.SetContents("box", []string{"key"})
	s.MarkKnown("box")
	s.MaxScore = 100

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got GameState
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "scene", got.CurrentScene, "kitchen")
	testutil.AssertEqual(t, "flag", got.HasFlag("boxOpen"), true)
	testutil.AssertEqual(t, "contents", len(got.Contents("box")), 1)
	testutil.AssertEqual(t, "max score", got.MaxScore, 100)
}

func TestGameState_KnownObjectsSorted(t *testing.T) {
	s := New("kitchen")
	s.MarkKnown("sack")
	s.MarkKnown("box")
	s.MarkKnown("lamp")

	got := s.KnownObjects()
	testutil.AssertEqual(t, "count", len(got), 3)
	testutil.AssertEqual(t, "first", got[0], "box")
	testutil.AssertEqual(t, "second", got[1], "lamp")
	testutil.AssertEqual(t, "third", got[2], "sack")
}

func TestGameState_AddScoreAllowsPenalties(t *testing.T) {
	s := New("kitchen")
	s.AddScore(10)
	s.AddScore(-4)
	testutil.AssertEqual(t, "score", s.Score, 6)
}
