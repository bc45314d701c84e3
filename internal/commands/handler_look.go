package commands

import (
	"fmt"
	"sort"
	"strings"
)

// LookHandler shows the current scene, or a brief description of a single
// object. Looking is free: it never consumes a turn.
type LookHandler struct {
	env *Env
}

func NewLookHandler(env *Env) *LookHandler {
	return &LookHandler{env: env}
}

func (h *LookHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "look"
}

func (h *LookHandler) Suggestions() []string {
	return []string{"look"}
}

func (h *LookHandler) Handle(cmd *Command) Result {
	phrase := cmd.Object
	if phrase == "" && cmd.Preposition == "at" {
		phrase = cmd.Target
	}

	if phrase == "" {
		return Info(DescribeScene(h.env))
	}

	id, obj, fail := h.env.RequirePerceivable(phrase)
	if fail != nil {
		return *fail
	}

	desc, err := h.env.Resolve.Examiner.ObjectDescription(h.env.SceneId(), id, false)
	if err != nil {
		return Failure(h.env.FailureText(err, obj.Name))
	}

	lines := []string{ExpandMessage(desc, h.env.messageData(obj))}
	if obj.Container && h.env.Resolve.Containers.IsOpen(id) {
		if listing := ContentsListing(h.env, id); listing != "" {
			lines = append(lines, listing)
		}
	}
	return Info(strings.Join(lines, "\n"))
}

// DescribeScene renders the full scene view: name, description, visible
// objects, and exits. In darkness only the dark text is shown, so scene
// content never leaks. Every object listed is marked known.
func DescribeScene(env *Env) string {
	scene := env.Scene()
	if scene == nil {
		return "You are nowhere at all."
	}

	desc := env.Resolve.Examiner.SceneDescription(env.SceneId())
	if !env.Resolve.Visibility.IsLightPresent(env.SceneId()) {
		return strings.Join([]string{scene.Name, desc}, "\n")
	}

	lines := []string{scene.Name, desc}

	var names []string
	for id, obj := range scene.Objects {
		if env.Resolve.Inventory.Has(id) {
			continue
		}
		if !env.Resolve.Visibility.IsObjectVisible(env.SceneId(), id) {
			continue
		}
		env.State.MarkKnown(id)
		names = append(names, obj.Name)
	}
	if len(names) > 0 {
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("You can see: %s.", strings.Join(names, ", ")))
	}

	if exits := VisibleExits(env); len(exits) > 0 {
		lines = append(lines, fmt.Sprintf("Exits: %s.", strings.Join(exits, ", ")))
	}

	return strings.Join(lines, "\n")
}

// VisibleExits lists exit directions from the current scene in declaration
// order.
func VisibleExits(env *Env) []string {
	scene := env.Scene()
	if scene == nil {
		return nil
	}
	var dirs []string
	for _, exit := range scene.Exits {
		dirs = append(dirs, exit.Direction)
	}
	return dirs
}

// ContentsListing renders the contents of an open container, or "" when
// empty.
func ContentsListing(env *Env, containerId string) string {
	contents := env.Resolve.Containers.Contents(containerId)
	if len(contents) == 0 {
		return ""
	}

	var names []string
	for _, itemId := range contents {
		env.State.MarkKnown(itemId)
		if obj := env.World.Object(env.SceneId(), itemId); obj != nil {
			names = append(names, obj.Name)
		} else {
			names = append(names, itemId)
		}
	}
	return fmt.Sprintf("It contains: %s.", strings.Join(names, ", "))
}
