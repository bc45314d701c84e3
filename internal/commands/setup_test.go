package commands

import (
	"testing"

	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
)

// newTestEnv builds the standard fixture: a lit kitchen with a rug puzzle
// and a dark cellar holding a portable lamp.
func newTestEnv(t *testing.T) *Env {
	t.Helper()

	scenes := map[string]*world.Scene{
		"kitchen": {
			Name:         "Kitchen",
			Light:        true,
			Descriptions: world.SceneDescriptions{Default: "A small kitchen."},
			Objects: map[string]*world.SceneObject{
				"sack": {
					Name:           "sack",
					VisibleOnEntry: true,
					Takeable:       true,
					Weight:         3,
					TakePoints:     2,
					Descriptions:   world.ObjectDescriptions{Default: "A brown sack."},
				},
				"coin": {
					Name:           "coin",
					VisibleOnEntry: true,
					Takeable:       true,
					Weight:         1,
					Descriptions:   world.ObjectDescriptions{Default: "A tarnished coin."},
				},
				"boulder": {
					Name:           "boulder",
					VisibleOnEntry: true,
					Takeable:       true,
					Weight:         18,
					Descriptions:   world.ObjectDescriptions{Default: "A heavy boulder."},
				},
				"box": {
					Name:           "box",
					VisibleOnEntry: true,
					Container:      true,
					Capacity:       1,
					Descriptions: world.ObjectDescriptions{
						Default: "A wooden box.",
						Empty:   "The box is empty.",
					},
				},
				"key": {
					Name:           "key",
					VisibleOnEntry: true,
					Takeable:       true,
					Weight:         1,
					Descriptions:   world.ObjectDescriptions{Default: "A small brass key."},
				},
				"rug": {
					Name:           "rug",
					VisibleOnEntry: true,
					Descriptions: world.ObjectDescriptions{
						Default: "A dusty oriental rug.",
						States: []world.StateDescription{
							{When: "rugMoved", Text: "The rug lies crumpled in a corner."},
						},
					},
					Interactions: map[string]*world.Interaction{
						"move": {
							Message:        "You move the rug, revealing a trapdoor.",
							RequiredFlags:  []string{"!rugMoved"},
							GrantsFlags:    []string{"rugMoved"},
							RevealsObjects: []string{"trapdoor"},
							FailureMessage: "The rug has already been moved.",
							Score:          5,
						},
					},
				},
				"trapdoor": {
					Name:         "trapdoor",
					Descriptions: world.ObjectDescriptions{Default: "A wooden trapdoor."},
				},
				"bell": {
					Name:         "bell",
					Descriptions: world.ObjectDescriptions{Default: "A small brass bell."},
					Interactions: map[string]*world.Interaction{
						"ring": {
							Message: "The bell clangs.",
							Score:   10,
						},
					},
				},
				"scroll": {
					Name:           "scroll",
					VisibleOnEntry: true,
					Takeable:       true,
					Weight:         1,
					Descriptions: world.ObjectDescriptions{
						Default: "A rolled parchment scroll.",
						Examine: "Faded letters read: beware the cellar.",
					},
				},
			},
			Exits: []*world.SceneExit{
				{Direction: "down", TargetScene: "cellar", RequiredFlags: []string{"trapdoorRevealed"}, FailureMessage: "You can't go that way."},
			},
		},
		"cellar": {
			Name: "Cellar",
			Descriptions: world.SceneDescriptions{
				Default: "A damp stone cellar.",
				Dark:    "It is pitch black down here.",
			},
			Objects: map[string]*world.SceneObject{
				"lamp": {
					Name:           "brass lamp",
					Aliases:        []string{"lamp", "lantern"},
					VisibleOnEntry: true,
					Takeable:       true,
					Weight:         4,
					LightSource:    true,
					Descriptions:   world.ObjectDescriptions{Default: "A battered brass lamp."},
				},
				"table": {
					Name:           "table",
					VisibleOnEntry: true,
					Descriptions:   world.ObjectDescriptions{Default: "A rough wooden table."},
				},
			},
			Exits: []*world.SceneExit{
				{Direction: "up", TargetScene: "kitchen"},
			},
		},
	}

	w, err := world.NewWorld(storage.NewMapStore(scenes), "kitchen")
	if err != nil {
		t.Fatalf("building test world: %v", err)
	}
	gs := state.New(w.StartScene())
	gs.MaxScore = w.MaxScore()
	w.SeedState(gs)
	return NewEnv(w, gs)
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *Env) {
	t.Helper()

	env := newTestEnv(t)
	return NewDispatcher(env), env
}
