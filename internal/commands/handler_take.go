package commands

import "fmt"

// TakeHandler moves an object from the scene (or an open container) into the
// player's inventory.
type TakeHandler struct {
	env *Env
}

func NewTakeHandler(env *Env) *TakeHandler {
	return &TakeHandler{env: env}
}

func (h *TakeHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "take"
}

func (h *TakeHandler) Suggestions() []string {
	return []string{"take"}
}

func (h *TakeHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return Failure("Take what?")
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}

	if err := h.env.Resolve.Inventory.Add(h.env.SceneId(), id); err != nil {
		return Failure(h.env.FailureText(err, obj.Name))
	}
	return SuccessResult(fmt.Sprintf("You take the %s.", obj.Name))
}
