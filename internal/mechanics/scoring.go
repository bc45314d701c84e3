package mechanics

import "github.com/pixil98/go-adventure/internal/state"

// Scoring applies score deltas. Add is unconditional; per-event idempotence
// uses the one-shot scored-flag pattern, applied identically by every caller
// through AwardOnce.
type Scoring struct {
	state *state.GameState
}

func NewScoring(gs *state.GameState) *Scoring {
	return &Scoring{state: gs}
}

// Add applies a delta. Negative deltas are allowed for penalty events.
func (s *Scoring) Add(points int) {
	s.state.AddScore(points)
}

// AwardOnce awards points for a named event at most once per game. Returns
// whether the award was applied.
func (s *Scoring) AwardOnce(event string, points int) bool {
	flag := state.ScoredFlag(event)
	if s.state.HasFlag(flag) {
		return false
	}
	s.state.SetFlag(flag)
	s.state.AddScore(points)
	return true
}

// Progress owns the turn counter. It advances once per successful,
// time-consuming command and never for purely informational ones.
type Progress struct {
	state *state.GameState
}

func NewProgress(gs *state.GameState) *Progress {
	return &Progress{state: gs}
}

// IncrementTurns bumps the turn counter.
func (p *Progress) IncrementTurns() {
	p.state.IncrementTurns()
}

// Turns returns the turn count.
func (p *Progress) Turns() int {
	return p.state.Turns
}
