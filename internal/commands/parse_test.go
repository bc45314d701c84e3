package commands

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseCommand(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   Command
	}{
		"bare verb": {
			input: "look",
			exp:   Command{Verb: "look"},
		},
		"verb object": {
			input: "take sack",
			exp:   Command{Verb: "take", Object: "sack"},
		},
		"verb synonym": {
			input: "grab sack",
			exp:   Command{Verb: "take", Object: "sack"},
		},
		"multiword object": {
			input: "examine brass lamp",
			exp:   Command{Verb: "examine", Object: "brass lamp"},
		},
		"preposition split": {
			input: "put coin in box",
			exp:   Command{Verb: "put", Object: "coin", Preposition: "in", Target: "box"},
		},
		"look at": {
			input: "look at table",
			exp:   Command{Verb: "look", Preposition: "at", Target: "table"},
		},
		"pick up particle": {
			input: "pick up sack",
			exp:   Command{Verb: "take", Object: "sack"},
		},
		"turn on form": {
			input: "turn on lamp",
			exp:   Command{Verb: "turn", Preposition: "on", Target: "lamp"},
		},
		"turn off form": {
			input: "turn off lamp",
			exp:   Command{Verb: "turn", Object: "off lamp"},
		},
		"direction abbreviation": {
			input: "n",
			exp:   Command{Verb: "north"},
		},
		"case and whitespace": {
			input: "  TAKE   Sack  ",
			exp:   Command{Verb: "take", Object: "sack"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			if err != nil {
				t.Fatalf("parsing: %v", err)
			}

			testutil.AssertEqual(t, "verb", cmd.Verb, tt.exp.Verb)
			testutil.AssertEqual(t, "object", cmd.Object, tt.exp.Object)
			testutil.AssertEqual(t, "preposition", cmd.Preposition, tt.exp.Preposition)
			testutil.AssertEqual(t, "target", cmd.Target, tt.exp.Target)
		})
	}
}

func TestParseCommand_Empty(t *testing.T) {
	for name, input := range map[string]string{
		"empty":      "",
		"whitespace": "   ",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCommand(input); !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("expected ErrEmptyInput, got %v", err)
			}
		})
	}
}
