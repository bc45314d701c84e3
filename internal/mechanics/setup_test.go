package mechanics

import (
	"testing"

	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
)

// newTestWorld builds a two-scene fixture: a lit kitchen with a container
// puzzle and a dark cellar with a portable lamp.
func newTestWorld(t *testing.T) *world.World {
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
				"painting": {
					Name:           "painting",
					VisibleOnEntry: true,
					ExaminePoints:  5,
					Descriptions: world.ObjectDescriptions{
						Default: "A painting hangs on the wall.",
						Examine: "It is a masterpiece by a neglected genius.",
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
	return w
}

func newTestResolvers(t *testing.T) (*Resolvers, *state.GameState) {
	t.Helper()

	w := newTestWorld(t)
	gs := state.New(w.StartScene())
	return NewResolvers(w, gs), gs
}
