package commands

import "fmt"

// ReadHandler reads an object. Objects with an authored "read" interaction
// use it; anything else with an examine text falls back to a close look.
type ReadHandler struct {
	env *Env
}

func NewReadHandler(env *Env) *ReadHandler {
	return &ReadHandler{env: env}
}

func (h *ReadHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "read"
}

func (h *ReadHandler) Suggestions() []string {
	return []string{"read"}
}

func (h *ReadHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return Failure("Read what?")
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}

	if in, ok := obj.Interactions["read"]; ok {
		return ExecuteInteraction(h.env, "read", id, obj, in)
	}

	if obj.Descriptions.Examine == "" {
		return Failure(fmt.Sprintf("There's nothing written on the %s.", obj.Name))
	}

	desc, err := h.env.Resolve.Examiner.ObjectDescription(h.env.SceneId(), id, true)
	if err != nil {
		return Failure(h.env.FailureText(err, obj.Name))
	}
	return SuccessResult(ExpandMessage(desc, h.env.messageData(obj)))
}
