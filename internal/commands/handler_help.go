package commands

import (
	"fmt"
	"strings"
)

// HelpHandler prints the command vocabulary. It asks the dispatcher rather
// than keeping its own list so new handlers come with free documentation.
type HelpHandler struct {
	dispatcher *Dispatcher
}

func NewHelpHandler(d *Dispatcher) *HelpHandler {
	return &HelpHandler{dispatcher: d}
}

func (h *HelpHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "help"
}

func (h *HelpHandler) Suggestions() []string {
	return []string{"help"}
}

func (h *HelpHandler) Handle(cmd *Command) Result {
	verbs := h.dispatcher.KnownVerbs()
	return Info(fmt.Sprintf("You can: %s.\nDirections can be abbreviated (n, s, e, w, u, d).",
		strings.Join(verbs, ", ")))
}
