package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/mechanics"
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// Handler is one unit of the dispatch chain. CanHandle declares whether the
// handler accepts a parsed command; Handle executes it. Handlers validate
// every precondition before performing any state write, so a failure leaves
// the game state untouched.
type Handler interface {
	CanHandle(cmd *Command) bool
	Handle(cmd *Command) Result

	// Suggestions returns input prefixes for autocompletion. May be nil.
	Suggestions() []string
}

// Env gives handlers shared access to the session's world, state, and
// resolver set. One Env exists per game session; there is no global state.
type Env struct {
	World   *world.World
	State   *state.GameState
	Resolve *mechanics.Resolvers
}

func NewEnv(w *world.World, gs *state.GameState) *Env {
	return &Env{
		World:   w,
		State:   gs,
		Resolve: mechanics.NewResolvers(w, gs),
	}
}

// SceneId returns the current scene id.
func (e *Env) SceneId() string {
	return e.State.CurrentScene
}

// Scene returns the current scene template.
func (e *Env) Scene() *world.Scene {
	return e.World.Scene(e.State.CurrentScene)
}

// FindObject matches a phrase against the current scene's objects without
// any visibility check.
func (e *Env) FindObject(phrase string) (string, *world.SceneObject) {
	return e.World.FindObject(e.SceneId(), phrase)
}

// RequirePerceivable locates an object the player can currently act on:
// light must be present, and the object must be either carried or visible
// (revealed and not sealed in a closed container). On failure the returned
// Result carries the player-facing message.
func (e *Env) RequirePerceivable(phrase string) (string, *world.SceneObject, *Result) {
	if !e.Resolve.Visibility.IsLightPresent(e.SceneId()) {
		r := Failure(mechanics.DarkMessage)
		return "", nil, &r
	}

	id, obj := e.FindObject(phrase)
	if obj == nil {
		// Carried objects stay actionable away from their home scene.
		for _, item := range e.Resolve.Inventory.List() {
			if item.Object.Matches(item.Id, phrase) {
				return item.Id, item.Object, nil
			}
		}
		r := Failure(fmt.Sprintf("You don't see any %s here.", phrase))
		return "", nil, &r
	}

	if e.Resolve.Inventory.Has(id) {
		return id, obj, nil
	}

	if e.Resolve.Containers.IsSealed(e.SceneId(), id) {
		container := e.Resolve.Containers.FindContainerWithItem(e.SceneId(), id)
		name := phrase
		if c := e.World.Object(e.SceneId(), container); c != nil {
			name = c.Name
		}
		r := Failure(fmt.Sprintf("The %s is closed.", name))
		return "", nil, &r
	}

	if !e.Resolve.Visibility.IsObjectVisible(e.SceneId(), id) {
		r := Failure(fmt.Sprintf("You don't see any %s here.", phrase))
		return "", nil, &r
	}

	e.State.MarkKnown(id)
	return id, obj, nil
}

// FailureText translates a resolver sentinel into narrative text.
func (e *Env) FailureText(err error, name string) string {
	switch {
	case errors.Is(err, mechanics.ErrDark):
		return mechanics.DarkMessage
	case errors.Is(err, mechanics.ErrUntakeable):
		return fmt.Sprintf("You can't take the %s.", name)
	case errors.Is(err, mechanics.ErrAlreadyCarried):
		return fmt.Sprintf("You're already carrying the %s.", name)
	case errors.Is(err, mechanics.ErrNotCarried):
		return fmt.Sprintf("You aren't carrying the %s.", name)
	case errors.Is(err, mechanics.ErrTooHeavy):
		return "Your load is too heavy to carry that as well."
	case errors.Is(err, mechanics.ErrNotContainer):
		return fmt.Sprintf("The %s isn't something you can put things in.", name)
	case errors.Is(err, mechanics.ErrLocked):
		return fmt.Sprintf("The %s is locked.", name)
	case errors.Is(err, mechanics.ErrAlreadyOpen):
		return fmt.Sprintf("The %s is already open.", name)
	case errors.Is(err, mechanics.ErrAlreadyClosed):
		return fmt.Sprintf("The %s is already closed.", name)
	case errors.Is(err, mechanics.ErrClosed), errors.Is(err, mechanics.ErrSealed):
		return fmt.Sprintf("The %s is closed.", name)
	case errors.Is(err, mechanics.ErrFull):
		return fmt.Sprintf("The %s is full.", name)
	case errors.Is(err, mechanics.ErrNotInside):
		return fmt.Sprintf("It isn't in the %s.", name)
	case errors.Is(err, mechanics.ErrNothingSpecial):
		return fmt.Sprintf("There's nothing special about the %s.", name)
	case errors.Is(err, mechanics.ErrNotVisible), errors.Is(err, mechanics.ErrUnknownObject):
		return fmt.Sprintf("You don't see any %s here.", name)
	default:
		return "Something went wrong."
	}
}

// messageData builds template data for authored text about an object.
func (e *Env) messageData(obj *world.SceneObject) MessageData {
	data := MessageData{}
	if obj != nil {
		data.Name = obj.Name
	}
	if scene := e.Scene(); scene != nil {
		data.Scene = scene.Name
	}
	return data
}

// selectInteractionMessage picks the message for a successful interaction:
// the first matching state variant wins, otherwise the base message.
func selectInteractionMessage(gs *state.GameState, in *world.Interaction) string {
	for _, sd := range in.States {
		if gs.CheckFlagExpr(sd.When) {
			return sd.Text
		}
	}
	return in.Message
}
