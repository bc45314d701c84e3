package state

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestGameState_CheckFlags(t *testing.T) {
	tests := map[string]struct {
		flags      []string
		conditions []string
		exp        bool
	}{
		"empty condition list passes": {
			flags:      []string{"anything"},
			conditions: nil,
			exp:        true,
		},
		"plain flag present": {
			flags:      []string{"hasKey"},
			conditions: []string{"hasKey"},
			exp:        true,
		},
		"plain flag absent": {
			flags:      nil,
			conditions: []string{"hasKey"},
			exp:        false,
		},
		"negated flag absent passes": {
			flags:      nil,
			conditions: []string{"!doorOpen"},
			exp:        true,
		},
		"negated flag present fails": {
			flags:      []string{"doorOpen"},
			conditions: []string{"!doorOpen"},
			exp:        false,
		},
		"all elements anded": {
			flags:      []string{"hasKey"},
			conditions: []string{"hasKey", "doorOpen"},
			exp:        false,
		},
		"or group first alternative": {
			flags:      []string{"hasCrowbar"},
			conditions: []string{"hasCrowbar|hasKey"},
			exp:        true,
		},
		"or group second alternative": {
			flags:      []string{"hasKey"},
			conditions: []string{"hasCrowbar|hasKey"},
			exp:        true,
		},
		"or group no alternative": {
			flags:      nil,
			conditions: []string{"hasCrowbar|hasKey"},
			exp:        false,
		},
		"negated alternative inside or group": {
			flags:      []string{"hasKey"},
			conditions: []string{"hasKey", "!doorOpen|hasCrowbar"},
			exp:        true,
		},
		"or group where negation fails but positive holds": {
			flags:      []string{"hasKey", "doorOpen", "hasCrowbar"},
			conditions: []string{"hasKey", "!doorOpen|hasCrowbar"},
			exp:        true,
		},
		"or group where every alternative fails": {
			flags:      []string{"hasKey", "doorOpen"},
			conditions: []string{"hasKey", "!doorOpen|hasCrowbar"},
			exp:        false,
		},
		"whitespace around alternatives tolerated": {
			flags:      []string{"lampOn"},
			conditions: []string{" lampOn | candleLit "},
			exp:        true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := New("start")
			for _, f := range tt.flags {
				s.SetFlag(f)
			}
			testutil.AssertEqual(t, "check", s.CheckFlags(tt.conditions), tt.exp)
		})
	}
}

func TestGameState_CheckFlagExpr(t *testing.T) {
	s := New("start")
	s.SetFlag("rugMoved")

	tests := map[string]struct {
		expr string
		exp  bool
	}{
		"empty expression passes":   {expr: "", exp: true},
		"single condition":          {expr: "rugMoved", exp: true},
		"comma joined all true":     {expr: "rugMoved, !trapdoorOpen", exp: true},
		"comma joined one false":    {expr: "rugMoved, trapdoorOpen", exp: false},
		"negation of present fails": {expr: "!rugMoved", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "check", s.CheckFlagExpr(tt.expr), tt.exp)
		})
	}
}

func TestGameState_FlagLifecycle(t *testing.T) {
	s := New("start")

	testutil.AssertEqual(t, "absent flag", s.HasFlag("lampOn"), false)

	s.SetFlag("lampOn")
	testutil.AssertEqual(t, "after set", s.HasFlag("lampOn"), true)

	// Setting twice is a no-op.
	s.SetFlag("lampOn")
	testutil.AssertEqual(t, "after double set", s.HasFlag("lampOn"), true)

	s.RemoveFlag("lampOn")
	testutil.AssertEqual(t, "after remove", s.HasFlag("lampOn"), false)

	// Removing an absent flag is a no-op.
	s.RemoveFlag("lampOn")
	testutil.AssertEqual(t, "after double remove", s.HasFlag("lampOn"), false)
}

func TestFlagNames(t *testing.T) {
	testutil.AssertEqual(t, "carried", CarriedFlag("sack"), "sackHas")
	testutil.AssertEqual(t, "open", OpenFlag("box"), "boxOpen")
	testutil.AssertEqual(t, "locked", LockedFlag("chest"), "chestLocked")
	testutil.AssertEqual(t, "revealed", RevealedFlag("trapdoor"), "trapdoorRevealed")
	testutil.AssertEqual(t, "on", OnFlag("lamp"), "lampOn")
	testutil.AssertEqual(t, "examined", ExaminedFlag("painting"), "paintingExamined")
	testutil.AssertEqual(t, "scored", ScoredFlag("takeEgg"), "takeEgg_scored")
}
