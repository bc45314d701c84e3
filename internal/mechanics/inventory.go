package mechanics

import (
	"sort"

	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// MaxInventoryWeight is the fixed carrying capacity in weight units.
const MaxInventoryWeight = 20

// CarriedItem pairs an object id with its template for inventory listings.
type CarriedItem struct {
	Id     string
	Object *world.SceneObject
}

// Inventory tracks carried items. Possession is a flag on the object, not a
// separate list, so "where is X" is always answerable from the flag store.
type Inventory struct {
	world      *world.World
	state      *state.GameState
	containers *Containers
	scoring    *Scoring
}

func NewInventory(w *world.World, gs *state.GameState, c *Containers, sc *Scoring) *Inventory {
	return &Inventory{world: w, state: gs, containers: c, scoring: sc}
}

// Has reports whether the player carries the object.
func (inv *Inventory) Has(objectId string) bool {
	return inv.state.HasFlag(state.CarriedFlag(objectId))
}

// List returns every carried item sorted by id.
func (inv *Inventory) List() []CarriedItem {
	var items []CarriedItem
	for _, scene := range inv.world.Scenes() {
		for objId, obj := range scene.Objects {
			if inv.Has(objId) {
				items = append(items, CarriedItem{Id: objId, Object: obj})
			}
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Id < items[j].Id })
	return items
}

// CurrentWeight sums the weights of all carried items.
func (inv *Inventory) CurrentWeight() int {
	total := 0
	for _, item := range inv.List() {
		total += item.Object.Weight
	}
	return total
}

// MaxWeight returns the carrying capacity.
func (inv *Inventory) MaxWeight() int {
	return MaxInventoryWeight
}

// Add moves an object into inventory. All preconditions are checked before
// any write: untakeable, already carried, and weight capacity. Taking an
// item out of an open container also removes it from the container's
// contents. The first successful take of an object awards its take bonus.
func (inv *Inventory) Add(sceneId, objectId string) error {
	obj := inv.world.Object(sceneId, objectId)
	if obj == nil {
		return ErrUnknownObject
	}
	if !obj.Takeable {
		return ErrUntakeable
	}
	if inv.Has(objectId) {
		return ErrAlreadyCarried
	}
	if inv.CurrentWeight()+obj.Weight > inv.MaxWeight() {
		return ErrTooHeavy
	}

	if containerId := inv.containers.FindContainerWithItem(sceneId, objectId); containerId != "" {
		if !inv.containers.IsOpen(containerId) {
			return ErrSealed
		}
		if err := inv.containers.Remove(containerId, objectId); err != nil {
			return err
		}
	}

	inv.state.SetFlag(state.CarriedFlag(objectId))
	if obj.TakePoints != 0 {
		inv.scoring.AwardOnce(objectId+"Take", obj.TakePoints)
	}
	return nil
}

// Remove drops an object from inventory.
func (inv *Inventory) Remove(objectId string) error {
	if !inv.Has(objectId) {
		return ErrNotCarried
	}
	inv.state.RemoveFlag(state.CarriedFlag(objectId))
	return nil
}
