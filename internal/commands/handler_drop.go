package commands

import (
	"fmt"
	"strings"
)

// DropHandler puts a carried object down in the current scene.
type DropHandler struct {
	env *Env
}

func NewDropHandler(env *Env) *DropHandler {
	return &DropHandler{env: env}
}

func (h *DropHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "drop"
}

func (h *DropHandler) Suggestions() []string {
	return []string{"drop"}
}

func (h *DropHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if phrase == "" {
		return Failure("Drop what?")
	}

	phrase = strings.TrimSpace(phrase)
	for _, item := range h.env.Resolve.Inventory.List() {
		if !item.Object.Matches(item.Id, phrase) {
			continue
		}
		if err := h.env.Resolve.Inventory.Remove(item.Id); err != nil {
			return Failure(h.env.FailureText(err, item.Object.Name))
		}
		return SuccessResult(fmt.Sprintf("You drop the %s.", item.Object.Name))
	}
	return Failure(fmt.Sprintf("You aren't carrying any %s.", phrase))
}
