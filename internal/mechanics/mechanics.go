// Package mechanics implements the resolver layer: stateless services that
// read and write the flag store to implement one concern each (visibility,
// containment, inventory, examination, scoring, progress). Handlers never
// touch GameState directly; they go through these.
package mechanics

import (
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// Resolvers bundles the full resolver set for one game session. All members
// share the same world and state references.
type Resolvers struct {
	Visibility *Visibility
	Containers *Containers
	Inventory  *Inventory
	Examiner   *Examiner
	Scoring    *Scoring
	Progress   *Progress
}

func NewResolvers(w *world.World, gs *state.GameState) *Resolvers {
	visibility := NewVisibility(w, gs)
	containers := NewContainers(w, gs)
	scoring := NewScoring(gs)

	return &Resolvers{
		Visibility: visibility,
		Containers: containers,
		Inventory:  NewInventory(w, gs, containers, scoring),
		Examiner:   NewExaminer(w, gs, visibility, containers, scoring),
		Scoring:    scoring,
		Progress:   NewProgress(gs),
	}
}
