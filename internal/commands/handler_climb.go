package commands

import "fmt"

// ClimbHandler resolves "climb" as movement when the argument is a
// direction, otherwise as an authored interaction on the named object.
type ClimbHandler struct {
	env  *Env
	move *MoveHandler
}

func NewClimbHandler(env *Env, move *MoveHandler) *ClimbHandler {
	return &ClimbHandler{env: env, move: move}
}

func (h *ClimbHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "climb"
}

func (h *ClimbHandler) Suggestions() []string {
	return []string{"climb"}
}

func (h *ClimbHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return h.move.Go("up")
	}

	if dir, ok := directionSynonyms[phrase]; ok {
		phrase = dir
	}
	if IsDirection(phrase) {
		return h.move.Go(phrase)
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}
	if in, ok := obj.Interactions["climb"]; ok {
		return ExecuteInteraction(h.env, "climb", id, obj, in)
	}
	return Failure(fmt.Sprintf("You can't climb the %s.", obj.Name))
}
