package commands

import "fmt"

// ClosureHandler opens and closes containers. Opening reveals the contents
// in the success message.
type ClosureHandler struct {
	env *Env
}

func NewClosureHandler(env *Env) *ClosureHandler {
	return &ClosureHandler{env: env}
}

func (h *ClosureHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "open" || cmd.Verb == "close"
}

func (h *ClosureHandler) Suggestions() []string {
	return []string{"open", "close"}
}

func (h *ClosureHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return Failure(fmt.Sprintf("%s what?", titleCaser.String(cmd.Verb)))
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}

	// Authored open/close interactions win over container mechanics, so a
	// trapdoor can open without being a container.
	if in, ok := obj.Interactions[cmd.Verb]; ok {
		return ExecuteInteraction(h.env, cmd.Verb, id, obj, in)
	}

	if cmd.Verb == "close" {
		if err := h.env.Resolve.Containers.Close(h.env.SceneId(), id); err != nil {
			return Failure(h.env.FailureText(err, obj.Name))
		}
		return SuccessResult(fmt.Sprintf("You close the %s.", obj.Name))
	}

	contents, err := h.env.Resolve.Containers.Open(h.env.SceneId(), id)
	if err != nil {
		return Failure(h.env.FailureText(err, obj.Name))
	}

	msg := fmt.Sprintf("You open the %s.", obj.Name)
	if len(contents) == 0 {
		if obj.Descriptions.Empty != "" {
			msg = fmt.Sprintf("%s %s", msg, ExpandMessage(obj.Descriptions.Empty, h.env.messageData(obj)))
		}
		return SuccessResult(msg)
	}
	return SuccessResult(fmt.Sprintf("%s\n%s", msg, ContentsListing(h.env, id)))
}
