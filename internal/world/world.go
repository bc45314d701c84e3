package world

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/storage"
)

// World holds the static content of a game: every scene template plus the
// designated starting scene. It provides a single reference that sessions,
// resolvers, and handlers can share.
type World struct {
	scenes storage.Storer[*Scene]
	start  string
}

func NewWorld(scenes storage.Storer[*Scene], startScene string) (*World, error) {
	w := &World{
		scenes: scenes,
		start:  startScene,
	}

	if err := w.resolve(); err != nil {
		return nil, err
	}
	return w, nil
}

// resolve checks cross-references between scenes: the start scene exists,
// every exit targets a real scene, and every revealed object id is defined
// somewhere.
func (w *World) resolve() error {
	if w.scenes.Get(w.start) == nil {
		return fmt.Errorf("start scene %q not found", w.start)
	}

	all := w.scenes.GetAll()

	defined := map[string]bool{}
	for _, scene := range all {
		for objId := range scene.Objects {
			defined[objId] = true
		}
	}

	for sceneId, scene := range all {
		for _, exit := range scene.Exits {
			if _, ok := all[exit.TargetScene]; !ok {
				return fmt.Errorf("scene %s: exit %s targets unknown scene %q", sceneId, exit.Direction, exit.TargetScene)
			}
		}
		for objId, obj := range scene.Objects {
			for verb, in := range obj.Interactions {
				for _, revealed := range in.RevealsObjects {
					if !defined[revealed] {
						return fmt.Errorf("scene %s: object %s interaction %q reveals unknown object %q", sceneId, objId, verb, revealed)
					}
				}
			}
			for _, contained := range obj.Contains {
				if _, ok := scene.Objects[contained]; !ok {
					return fmt.Errorf("scene %s: container %s holds unknown object %q", sceneId, objId, contained)
				}
			}
		}
	}

	return nil
}

// StartScene returns the id of the starting scene.
func (w *World) StartScene() string {
	return w.start
}

// Scene returns a scene template by id, or nil.
func (w *World) Scene(id string) *Scene {
	return w.scenes.Get(id)
}

// Scenes returns every scene template keyed by id.
func (w *World) Scenes() map[string]*Scene {
	return w.scenes.GetAll()
}

// Object returns an object template from a scene, or nil.
func (w *World) Object(sceneId, objectId string) *SceneObject {
	scene := w.scenes.Get(sceneId)
	if scene == nil {
		return nil
	}
	return scene.Objects[objectId]
}

// ObjectAnywhere finds an object template by id in any scene. Returns the
// home scene id and the template, or "" and nil. Carried objects are acted
// on away from the scene that defines them, which is when this is needed.
func (w *World) ObjectAnywhere(objectId string) (string, *SceneObject) {
	for sceneId, scene := range w.scenes.GetAll() {
		if obj, ok := scene.Objects[objectId]; ok {
			return sceneId, obj
		}
	}
	return "", nil
}

// FindObject matches a player phrase against the objects of a scene.
// Returns the object id and template, or "" and nil.
func (w *World) FindObject(sceneId, phrase string) (string, *SceneObject) {
	scene := w.scenes.Get(sceneId)
	if scene == nil {
		return "", nil
	}
	for id, obj := range scene.Objects {
		if obj.Matches(id, phrase) {
			return id, obj
		}
	}
	return "", nil
}

// SeedState writes the authored starting contents of every container into a
// fresh game state.
func (w *World) SeedState(gs *state.GameState) {
	for _, scene := range w.scenes.GetAll() {
		for objId, obj := range scene.Objects {
			if len(obj.Contains) > 0 {
				gs.SetContents(objId, slices.Clone(obj.Contains))
			}
			if obj.Locked {
				gs.SetFlag(state.LockedFlag(objId))
			}
		}
	}
}

// MaxScore sums every positive score the content can award: interaction
// scores plus first-take and first-examine bonuses.
func (w *World) MaxScore() int {
	total := 0
	for _, scene := range w.scenes.GetAll() {
		for _, obj := range scene.Objects {
			total += obj.TakePoints
			total += obj.ExaminePoints
			for _, in := range obj.Interactions {
				if in.Score > 0 {
					total += in.Score
				}
			}
		}
	}
	return total
}
