package commands

import (
	"fmt"
	"strings"
)

// ErrEmptyInput marks empty or whitespace-only input.
var ErrEmptyInput = fmt.Errorf("empty input")

// ParseCommand tokenizes one line of player input. The input is lowercased
// and split on whitespace; a single token is a bare verb; with more tokens,
// everything before the first preposition forms the object phrase and
// everything after forms the target phrase. Without a preposition all
// remaining tokens are the object phrase.
func ParseCommand(raw string) (*Command, error) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	tokens := strings.Fields(trimmed)
	cmd := &Command{
		Verb: NormalizeVerb(tokens[0]),
		Raw:  strings.TrimSpace(raw),
	}

	rest := tokens[1:]

	// "pick up sack" arrives as verb "take" with a leading particle.
	if len(rest) > 0 && cmd.Verb == "take" && rest[0] == "up" {
		rest = rest[1:]
	}

	for i, tok := range rest {
		if prepositions[tok] {
			cmd.Object = strings.Join(rest[:i], " ")
			cmd.Preposition = tok
			cmd.Target = strings.Join(rest[i+1:], " ")
			return cmd, nil
		}
	}

	cmd.Object = strings.Join(rest, " ")
	return cmd, nil
}
