package mechanics

import (
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// DarkMessage is the uniform response whenever darkness blocks an action.
const DarkMessage = "It's pitch black in here. You can't see a thing."

// Examiner computes description text for scenes and objects given current
// flags and detail level.
type Examiner struct {
	world      *world.World
	state      *state.GameState
	visibility *Visibility
	containers *Containers
	scoring    *Scoring
}

func NewExaminer(w *world.World, gs *state.GameState, v *Visibility, c *Containers, sc *Scoring) *Examiner {
	return &Examiner{world: w, state: gs, visibility: v, containers: c, scoring: sc}
}

// CanExamine validates that an object can be looked at right now: light
// present, object perceivable (carried counts), not sealed in a closed
// container, and there is something to say about it.
func (e *Examiner) CanExamine(sceneId, objectId string) error {
	obj := e.lookup(sceneId, objectId)
	if obj == nil {
		return ErrUnknownObject
	}
	if !e.visibility.IsLightPresent(sceneId) {
		return ErrDark
	}

	if !e.state.HasFlag(state.CarriedFlag(objectId)) {
		if e.containers.IsSealed(sceneId, objectId) {
			return ErrSealed
		}
		if !e.visibility.IsObjectVisible(sceneId, objectId) {
			return ErrNotVisible
		}
	}

	if !e.hasAnyDescription(obj) {
		return ErrNothingSpecial
	}
	return nil
}

// lookup resolves an object in the given scene, falling back to its home
// scene when the player carries it somewhere else.
func (e *Examiner) lookup(sceneId, objectId string) *world.SceneObject {
	if obj := e.world.Object(sceneId, objectId); obj != nil {
		return obj
	}
	if e.state.HasFlag(state.CarriedFlag(objectId)) {
		_, obj := e.world.ObjectAnywhere(objectId)
		return obj
	}
	return nil
}

func (e *Examiner) hasAnyDescription(obj *world.SceneObject) bool {
	d := obj.Descriptions
	if d.Default != "" || d.Examine != "" || len(d.States) > 0 {
		return true
	}
	_, ok := obj.Interactions["examine"]
	return ok
}

// ObjectDescription returns the description for an object. Brief mode always
// uses the default text. Detailed mode prefers the explicit examine text,
// then the first matching state variant, then the empty variant for an open
// empty container, then the default. A detailed examination marks the object
// examined and pays out its examine bonus at most once; the examined flag
// and the scored flag are kept separate so repeat examinations never award
// twice.
func (e *Examiner) ObjectDescription(sceneId, objectId string, detailed bool) (string, error) {
	if err := e.CanExamine(sceneId, objectId); err != nil {
		return "", err
	}
	obj := e.lookup(sceneId, objectId)

	e.state.MarkKnown(objectId)

	if !detailed {
		return obj.Descriptions.Default, nil
	}

	e.state.SetFlag(state.ExaminedFlag(objectId))
	if obj.ExaminePoints != 0 {
		e.scoring.AwardOnce(objectId+"Examine", obj.ExaminePoints)
	}

	if obj.Descriptions.Examine != "" {
		return obj.Descriptions.Examine, nil
	}
	for _, sd := range obj.Descriptions.States {
		if e.state.CheckFlagExpr(sd.When) {
			return sd.Text, nil
		}
	}
	if obj.Container && e.containers.IsOpen(objectId) &&
		len(e.containers.Contents(objectId)) == 0 && obj.Descriptions.Empty != "" {
		return obj.Descriptions.Empty, nil
	}
	return obj.Descriptions.Default, nil
}

// SceneDescription returns the text for a scene: the dark text when no light
// is present, otherwise the first matching state variant, otherwise the
// default. State variants are checked in declaration order; first match wins.
func (e *Examiner) SceneDescription(sceneId string) string {
	scene := e.world.Scene(sceneId)
	if scene == nil {
		return ""
	}

	if !e.visibility.IsLightPresent(sceneId) {
		if scene.Descriptions.Dark != "" {
			return scene.Descriptions.Dark
		}
		return DarkMessage
	}

	for _, sd := range scene.Descriptions.States {
		if e.state.CheckFlagExpr(sd.When) {
			return sd.Text
		}
	}
	return scene.Descriptions.Default
}
