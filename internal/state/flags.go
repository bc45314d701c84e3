package state

import "strings"

// SetFlag records a fact as true.
func (s *GameState) SetFlag(name string) {
	if s.Flags == nil {
		s.Flags = map[string]bool{}
	}
	s.Flags[name] = true
}

// RemoveFlag clears a fact. Removing an absent flag is a no-op.
func (s *GameState) RemoveFlag(name string) {
	delete(s.Flags, name)
}

// HasFlag reports whether a fact is set. Absent flags read as false.
func (s *GameState) HasFlag(name string) bool {
	return s.Flags[name]
}

// CheckFlags evaluates a condition list. Each element must hold (AND). Within
// an element, pipe-separated alternatives are ORed, and any alternative may be
// negated with a leading '!':
//
//	["hasKey", "!doorOpen|hasCrowbar"]
//
// is true iff hasKey is set and (doorOpen is unset or hasCrowbar is set).
// An empty list always passes.
func (s *GameState) CheckFlags(conditions []string) bool {
	for _, cond := range conditions {
		if !s.checkCondition(cond) {
			return false
		}
	}
	return true
}

// CheckFlagExpr evaluates a comma-joined condition list, the form used by
// state-keyed description selection.
func (s *GameState) CheckFlagExpr(expr string) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}
	parts := strings.Split(expr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return s.CheckFlags(parts)
}

func (s *GameState) checkCondition(cond string) bool {
	for _, alt := range strings.Split(cond, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		if neg, ok := strings.CutPrefix(alt, "!"); ok {
			if !s.HasFlag(neg) {
				return true
			}
		} else if s.HasFlag(alt) {
			return true
		}
	}
	return false
}

// Flag name conventions. All dynamic per-object facts are encoded as flags
// derived from the object id, so "where is object X" is always answerable
// from the flag store alone.

// CarriedFlag marks an object as held in inventory.
func CarriedFlag(objectId string) string { return objectId + "Has" }

// OpenFlag marks a container as open.
func OpenFlag(objectId string) string { return objectId + "Open" }

// LockedFlag marks a container as locked.
func LockedFlag(objectId string) string { return objectId + "Locked" }

// RevealedFlag marks an object that started hidden as perceivable.
func RevealedFlag(objectId string) string { return objectId + "Revealed" }

// OnFlag marks a light source as switched on.
func OnFlag(objectId string) string { return objectId + "On" }

// ExaminedFlag marks an object as having been examined in detail.
func ExaminedFlag(objectId string) string { return objectId + "Examined" }

// ScoredFlag is the one-shot marker for a scoring event.
func ScoredFlag(event string) string { return event + "_scored" }
