package commands

import "sort"

// MoveHandler walks the player through scene exits. Movement is permitted in
// the dark; the arrival text will simply be the dark description.
type MoveHandler struct {
	env *Env
}

func NewMoveHandler(env *Env) *MoveHandler {
	return &MoveHandler{env: env}
}

func (h *MoveHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "go"
}

func (h *MoveHandler) Suggestions() []string {
	dirs := []string{"go"}
	for d := range canonicalDirections {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

func (h *MoveHandler) Handle(cmd *Command) Result {
	dir := cmd.Object
	if dir == "" {
		dir = cmd.Target
	}
	// "go in" parses "in" as a preposition rather than an argument.
	if dir == "" && IsDirection(cmd.Preposition) {
		dir = cmd.Preposition
	}
	if dir == "" {
		return Failure("Go where?")
	}
	if d, ok := directionSynonyms[dir]; ok {
		dir = d
	}
	if !IsDirection(dir) {
		return Failure("That's not a direction you can go.")
	}
	return h.Go(dir)
}

// Go attempts to leave the current scene in the given canonical direction.
func (h *MoveHandler) Go(direction string) Result {
	scene := h.env.Scene()
	if scene == nil {
		return Failure("You can't go that way.")
	}

	exit := scene.Exit(direction)
	if exit == nil {
		return Failure("You can't go that way.")
	}

	if !h.env.State.CheckFlags(exit.RequiredFlags) {
		if exit.FailureMessage != "" {
			return Failure(ExpandMessage(exit.FailureMessage, h.env.messageData(nil)))
		}
		return Failure("You can't go that way.")
	}

	h.env.State.MoveTo(exit.TargetScene)
	return SuccessResult(DescribeScene(h.env))
}
