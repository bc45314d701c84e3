package commands

import "strings"

// ExamineHandler gives the detailed description of an object. A successful
// examination counts as a turn and may award a one-time score bonus.
type ExamineHandler struct {
	env *Env
}

func NewExamineHandler(env *Env) *ExamineHandler {
	return &ExamineHandler{env: env}
}

func (h *ExamineHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "examine"
}

func (h *ExamineHandler) Suggestions() []string {
	return []string{"examine"}
}

func (h *ExamineHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return Failure("Examine what?")
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}

	if err := h.env.Resolve.Examiner.CanExamine(h.env.SceneId(), id); err != nil {
		return Failure(h.env.FailureText(err, obj.Name))
	}

	desc, err := h.env.Resolve.Examiner.ObjectDescription(h.env.SceneId(), id, true)
	if err != nil {
		return Failure(h.env.FailureText(err, obj.Name))
	}

	lines := []string{ExpandMessage(desc, h.env.messageData(obj))}
	if obj.Container && h.env.Resolve.Containers.IsOpen(id) {
		if listing := ContentsListing(h.env, id); listing != "" {
			lines = append(lines, listing)
		}
	}
	return SuccessResult(strings.Join(lines, "\n"))
}
