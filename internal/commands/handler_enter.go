package commands

import (
	"fmt"
	"strings"
)

// EnterHandler resolves "enter". Bare "enter" takes the scene's "in" exit.
// With an argument it tries, in order: an exit whose target scene matches
// the phrase, then an authored "enter" interaction on the named object.
type EnterHandler struct {
	env  *Env
	move *MoveHandler
}

func NewEnterHandler(env *Env, move *MoveHandler) *EnterHandler {
	return &EnterHandler{env: env, move: move}
}

func (h *EnterHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "enter"
}

func (h *EnterHandler) Suggestions() []string {
	return []string{"enter"}
}

func (h *EnterHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return h.move.Go("in")
	}
	phrase = strings.TrimSpace(phrase)

	if dir, ok := h.exitTowards(phrase); ok {
		return h.move.Go(dir)
	}

	if id, obj := h.env.FindObject(phrase); obj != nil {
		if in, ok := obj.Interactions["enter"]; ok {
			if _, _, fail := h.env.RequirePerceivable(phrase); fail != nil {
				return *fail
			}
			return ExecuteInteraction(h.env, "enter", id, obj, in)
		}
	}
	return Failure(fmt.Sprintf("You can't enter the %s.", phrase))
}

// exitTowards finds an exit whose target scene id or display name matches
// the phrase.
func (h *EnterHandler) exitTowards(phrase string) (string, bool) {
	scene := h.env.Scene()
	if scene == nil {
		return "", false
	}
	for _, exit := range scene.Exits {
		if strings.EqualFold(exit.TargetScene, phrase) {
			return exit.Direction, true
		}
		if target := h.env.World.Scene(exit.TargetScene); target != nil &&
			strings.EqualFold(target.Name, phrase) {
			return exit.Direction, true
		}
	}
	return "", false
}
