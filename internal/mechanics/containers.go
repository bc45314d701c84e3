package mechanics

import (
	"slices"

	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// Containers manages open/closed/locked state and capacity-bounded
// membership. Open and locked are flags; contents live in the state's
// objectData so the templates stay immutable.
type Containers struct {
	world *world.World
	state *state.GameState
}

func NewContainers(w *world.World, gs *state.GameState) *Containers {
	return &Containers{world: w, state: gs}
}

// IsOpen reports whether a container is open.
func (c *Containers) IsOpen(containerId string) bool {
	return c.state.HasFlag(state.OpenFlag(containerId))
}

// IsLocked reports whether a container is locked.
func (c *Containers) IsLocked(containerId string) bool {
	return c.state.HasFlag(state.LockedFlag(containerId))
}

// Contents returns the item ids currently inside a container.
func (c *Containers) Contents(containerId string) []string {
	return c.state.Contents(containerId)
}

// Open opens a container and returns its contents for listing. A locked
// container must be unlocked elsewhere (an unlock interaction clearing the
// lock flag) before it can be opened.
func (c *Containers) Open(sceneId, containerId string) ([]string, error) {
	obj := c.world.Object(sceneId, containerId)
	if obj == nil {
		return nil, ErrUnknownObject
	}
	if !obj.Container {
		return nil, ErrNotContainer
	}
	if c.IsLocked(containerId) {
		return nil, ErrLocked
	}
	if c.IsOpen(containerId) {
		return nil, ErrAlreadyOpen
	}

	c.state.SetFlag(state.OpenFlag(containerId))
	return c.Contents(containerId), nil
}

// Close closes an open container.
func (c *Containers) Close(sceneId, containerId string) error {
	obj := c.world.Object(sceneId, containerId)
	if obj == nil {
		return ErrUnknownObject
	}
	if !obj.Container {
		return ErrNotContainer
	}
	if !c.IsOpen(containerId) {
		return ErrAlreadyClosed
	}

	c.state.RemoveFlag(state.OpenFlag(containerId))
	return nil
}

// Add places an item into a container. Capacity is checked only on add,
// never retroactively.
func (c *Containers) Add(sceneId, containerId, itemId string) error {
	obj := c.world.Object(sceneId, containerId)
	if obj == nil {
		return ErrUnknownObject
	}
	if !obj.Container {
		return ErrNotContainer
	}
	if !c.IsOpen(containerId) {
		return ErrClosed
	}

	contents := c.Contents(containerId)
	if len(contents) >= obj.Capacity {
		return ErrFull
	}

	c.state.SetContents(containerId, append(slices.Clone(contents), itemId))
	return nil
}

// Remove takes an item out of a container.
func (c *Containers) Remove(containerId, itemId string) error {
	contents := c.Contents(containerId)
	idx := slices.Index(contents, itemId)
	if idx < 0 {
		return ErrNotInside
	}

	c.state.SetContents(containerId, slices.Delete(slices.Clone(contents), idx, idx+1))
	return nil
}

// FindContainerWithItem scans the containers of a scene for one holding the
// item. Used to forbid taking or examining items sealed inside a closed box.
func (c *Containers) FindContainerWithItem(sceneId, itemId string) string {
	scene := c.world.Scene(sceneId)
	if scene == nil {
		return ""
	}
	for containerId, obj := range scene.Objects {
		if !obj.Container {
			continue
		}
		if slices.Contains(c.Contents(containerId), itemId) {
			return containerId
		}
	}
	return ""
}

// IsSealed reports whether an item sits inside a closed container in the
// scene.
func (c *Containers) IsSealed(sceneId, itemId string) bool {
	containerId := c.FindContainerWithItem(sceneId, itemId)
	return containerId != "" && !c.IsOpen(containerId)
}
