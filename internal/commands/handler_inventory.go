package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
)

// InventoryHandler lists what the player carries. Checking your pockets is
// free.
type InventoryHandler struct {
	env *Env
}

func NewInventoryHandler(env *Env) *InventoryHandler {
	return &InventoryHandler{env: env}
}

func (h *InventoryHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "inventory"
}

func (h *InventoryHandler) Suggestions() []string {
	return []string{"inventory"}
}

func (h *InventoryHandler) Handle(cmd *Command) Result {
	items := h.env.Resolve.Inventory.List()
	if len(items) == 0 {
		return Info("You aren't carrying anything.")
	}

	lines := []string{"You are carrying:"}
	for _, item := range items {
		lines = append(lines, display.Indent(item.Object.Name, 2))
	}
	lines = append(lines, fmt.Sprintf("Total weight: %d/%d",
		h.env.Resolve.Inventory.CurrentWeight(), h.env.Resolve.Inventory.MaxWeight()))
	return Info(strings.Join(lines, "\n"))
}
