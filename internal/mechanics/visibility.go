package mechanics

import (
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// Visibility decides whether scenes and objects can currently be perceived.
// Darkness gates nearly everything else: when no light is present, examine,
// take, open, and read all fail uniformly rather than leaking scene content.
type Visibility struct {
	world *world.World
	state *state.GameState
}

func NewVisibility(w *world.World, gs *state.GameState) *Visibility {
	return &Visibility{world: w, state: gs}
}

// IsLightPresent reports whether a scene can be seen at all: either it has
// ambient light, or a switched-on light source is in the scene or carried.
func (v *Visibility) IsLightPresent(sceneId string) bool {
	scene := v.world.Scene(sceneId)
	if scene == nil {
		return false
	}
	if scene.Light {
		return true
	}

	// A lit source in the current scene counts unless it was carried away.
	for objId, obj := range scene.Objects {
		if obj.LightSource && v.state.HasFlag(state.OnFlag(objId)) && !v.state.HasFlag(state.CarriedFlag(objId)) {
			return true
		}
	}

	// A lit source in inventory travels with the player.
	for _, s := range v.world.Scenes() {
		for objId, obj := range s.Objects {
			if obj.LightSource && v.state.HasFlag(state.OnFlag(objId)) && v.state.HasFlag(state.CarriedFlag(objId)) {
				return true
			}
		}
	}

	return false
}

// IsObjectVisible reports whether an object in a scene can be perceived:
// it must be visible on entry or revealed, and not shut inside a closed
// container.
func (v *Visibility) IsObjectVisible(sceneId, objectId string) bool {
	obj := v.world.Object(sceneId, objectId)
	if obj == nil {
		return false
	}

	// Containment trumps the entry flag: anything inside a container is
	// visible exactly when the container is open.
	if containerId := v.enclosingContainer(sceneId, objectId); containerId != "" {
		return v.state.HasFlag(state.OpenFlag(containerId))
	}

	return obj.VisibleOnEntry || v.state.HasFlag(state.RevealedFlag(objectId))
}

// enclosingContainer returns the id of the container currently holding the
// object, or "".
func (v *Visibility) enclosingContainer(sceneId, objectId string) string {
	scene := v.world.Scene(sceneId)
	if scene == nil {
		return ""
	}
	for containerId, obj := range scene.Objects {
		if !obj.Container {
			continue
		}
		for _, itemId := range v.state.Contents(containerId) {
			if itemId == objectId {
				return containerId
			}
		}
	}
	return ""
}
