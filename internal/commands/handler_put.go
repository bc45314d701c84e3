package commands

import (
	"fmt"
	"strings"
)

// PutHandler moves a carried object into an open container. The container is
// checked before anything is written, so a full or closed container leaves
// the inventory untouched.
type PutHandler struct {
	env *Env
}

func NewPutHandler(env *Env) *PutHandler {
	return &PutHandler{env: env}
}

func (h *PutHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "put" && cmd.Preposition == "in"
}

func (h *PutHandler) Suggestions() []string {
	return []string{"put"}
}

func (h *PutHandler) Handle(cmd *Command) Result {
	if cmd.Object == "" || cmd.Target == "" {
		return Failure("Put what where?")
	}

	itemPhrase := strings.TrimSpace(cmd.Object)
	var itemId string
	var itemName string
	for _, item := range h.env.Resolve.Inventory.List() {
		if item.Object.Matches(item.Id, itemPhrase) {
			itemId = item.Id
			itemName = item.Object.Name
			break
		}
	}
	if itemId == "" {
		return Failure(fmt.Sprintf("You aren't carrying any %s.", itemPhrase))
	}

	// An object can only be stowed in the scene that defines it; everywhere
	// else it stays in hand, since retrieval resolves scene-locally.
	if home, _ := h.env.World.ObjectAnywhere(itemId); home != h.env.SceneId() {
		return Failure(fmt.Sprintf("You'd best hang on to the %s.", itemName))
	}

	containerId, container, fail := h.env.RequirePerceivable(cmd.Target)
	if fail != nil {
		return *fail
	}

	if err := h.env.Resolve.Containers.Add(h.env.SceneId(), containerId, itemId); err != nil {
		return Failure(h.env.FailureText(err, container.Name))
	}
	if err := h.env.Resolve.Inventory.Remove(itemId); err != nil {
		// Undo the container write so a bad item leaves nothing moved.
		_ = h.env.Resolve.Containers.Remove(containerId, itemId)
		return Failure(h.env.FailureText(err, itemName))
	}
	return SuccessResult(fmt.Sprintf("You put the %s in the %s.", itemName, container.Name))
}
