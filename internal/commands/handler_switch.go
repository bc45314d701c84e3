package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/mechanics"
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// SwitchHandler turns light sources on and off. It accepts "turn on lamp",
// "turn lamp on", and the off forms. A carried light source may be lit in
// the dark; everything else still needs light to be found.
type SwitchHandler struct {
	env *Env
}

func NewSwitchHandler(env *Env) *SwitchHandler {
	return &SwitchHandler{env: env}
}

func (h *SwitchHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "turn"
}

func (h *SwitchHandler) Suggestions() []string {
	return []string{"turn on", "turn off"}
}

func (h *SwitchHandler) Handle(cmd *Command) Result {
	phrase, on, ok := splitSwitchPhrase(cmd)
	if !ok {
		return Failure("Turn what on or off?")
	}

	id, obj, fail := h.findSwitchable(phrase)
	if fail != nil {
		return *fail
	}

	if in, found := obj.Interactions["turn"]; found && !obj.LightSource {
		return ExecuteInteraction(h.env, "turn", id, obj, in)
	}
	if !obj.LightSource {
		return Failure(fmt.Sprintf("The %s isn't something you can turn on or off.", obj.Name))
	}

	lit := h.env.State.HasFlag(state.OnFlag(id))
	if on {
		if lit {
			return Failure(fmt.Sprintf("The %s is already on.", obj.Name))
		}
		h.env.State.SetFlag(state.OnFlag(id))
		msg := fmt.Sprintf("You turn on the %s.", obj.Name)
		// Lighting up a dark scene deserves the reveal.
		if h.env.Resolve.Visibility.IsLightPresent(h.env.SceneId()) {
			msg = fmt.Sprintf("%s\n%s", msg, DescribeScene(h.env))
		}
		return SuccessResult(msg)
	}

	if !lit {
		return Failure(fmt.Sprintf("The %s is already off.", obj.Name))
	}
	h.env.State.RemoveFlag(state.OnFlag(id))
	return SuccessResult(fmt.Sprintf("You turn off the %s.", obj.Name))
}

// findSwitchable locates the object without the usual light gate: a carried
// object can always be switched, so the player can light a lamp in the dark.
func (h *SwitchHandler) findSwitchable(phrase string) (string, *world.SceneObject, *Result) {
	for _, item := range h.env.Resolve.Inventory.List() {
		if item.Object.Matches(item.Id, phrase) {
			return item.Id, item.Object, nil
		}
	}
	if !h.env.Resolve.Visibility.IsLightPresent(h.env.SceneId()) {
		r := Failure(mechanics.DarkMessage)
		return "", nil, &r
	}
	return h.env.RequirePerceivable(phrase)
}

// splitSwitchPhrase extracts the object phrase and the desired state from
// the various shapes "turn on X", "turn X on", "turn off X", "turn X off".
func splitSwitchPhrase(cmd *Command) (phrase string, on bool, ok bool) {
	// "turn on X" parses the preposition out.
	if cmd.Preposition == "on" {
		phrase = cmd.Target
		if phrase == "" {
			phrase = cmd.Object
		}
		return strings.TrimSpace(phrase), true, phrase != ""
	}

	phrase = strings.TrimSpace(cmd.Object)
	if phrase == "" {
		phrase = strings.TrimSpace(cmd.Target)
	}
	switch {
	case strings.HasPrefix(phrase, "off "):
		return strings.TrimSpace(strings.TrimPrefix(phrase, "off ")), false, true
	case strings.HasSuffix(phrase, " off"):
		return strings.TrimSpace(strings.TrimSuffix(phrase, " off")), false, true
	case phrase != "":
		// "turn lamp" defaults to toggling on.
		return phrase, true, true
	}
	return "", false, false
}
