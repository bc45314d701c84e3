package commands

import (
	"github.com/pixil98/go-adventure/internal/state"
	"github.com/pixil98/go-adventure/internal/world"
)

// InteractionHandler is the chain's generic fallback: it runs authored
// interactions for any verb no dedicated handler claimed, such as "move rug"
// or "pull lever".
type InteractionHandler struct {
	env *Env
}

func NewInteractionHandler(env *Env) *InteractionHandler {
	return &InteractionHandler{env: env}
}

func (h *InteractionHandler) CanHandle(cmd *Command) bool {
	_, _, in := h.findInteraction(cmd)
	return in != nil
}

func (h *InteractionHandler) Suggestions() []string {
	return nil
}

func (h *InteractionHandler) Handle(cmd *Command) Result {
	phrase, _, in := h.findInteraction(cmd)
	if in == nil {
		return Failure(msgNoMatch)
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}
	return ExecuteInteraction(h.env, cmd.Verb, id, obj, obj.Interactions[cmd.Verb])
}

func (h *InteractionHandler) findInteraction(cmd *Command) (string, string, *world.Interaction) {
	phrase := cmd.Object
	if phrase == "" {
		phrase = cmd.Target
	}
	if cmd.Verb == "" || phrase == "" {
		return "", "", nil
	}

	id, obj := h.env.FindObject(phrase)
	if obj == nil {
		return "", "", nil
	}
	in, ok := obj.Interactions[cmd.Verb]
	if !ok {
		return "", "", nil
	}
	return phrase, id, in
}

// ExecuteInteraction applies one authored interaction: requirements are
// checked first, then flags, reveals, and score are applied together, so a
// failed requirement changes nothing. The message is chosen against the
// flags as they were when the player acted. Points are paid out at most
// once per object and verb, keyed like the take and examine bonuses.
func ExecuteInteraction(env *Env, verb, objectId string, obj *world.SceneObject, in *world.Interaction) Result {
	if !env.State.CheckFlags(in.RequiredFlags) {
		if in.FailureMessage != "" {
			return Failure(ExpandMessage(in.FailureMessage, env.messageData(obj)))
		}
		return Failure("Nothing happens.")
	}

	msg := selectInteractionMessage(env.State, in)

	for _, flag := range in.GrantsFlags {
		env.State.SetFlag(flag)
	}
	for _, flag := range in.RemovesFlags {
		env.State.RemoveFlag(flag)
	}
	for _, revealed := range in.RevealsObjects {
		env.State.SetFlag(state.RevealedFlag(revealed))
		env.State.MarkKnown(revealed)
	}
	if in.Score != 0 {
		env.Resolve.Scoring.AwardOnce(objectId+titleCaser.String(verb), in.Score)
	}

	if msg == "" {
		msg = "Nothing obvious happens."
	}
	return SuccessResult(ExpandMessage(msg, env.messageData(obj)))
}
