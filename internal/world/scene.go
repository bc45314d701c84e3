package world

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Scene is a static location template loaded from asset files. Scenes are
// pure content: nothing in here changes at runtime.
type Scene struct {
	Name         string                  `json:"name"`
	Region       string                  `json:"region,omitempty"`
	Light        bool                    `json:"light"`
	Descriptions SceneDescriptions       `json:"descriptions"`
	Objects      map[string]*SceneObject `json:"objects,omitempty"`
	Exits        []*SceneExit            `json:"exits,omitempty"`
}

// SceneDescriptions selects scene text by state. States are checked in
// declaration order and the first matching entry wins, so order is
// significant.
type SceneDescriptions struct {
	Default string             `json:"default"`
	Dark    string             `json:"dark,omitempty"`
	States  []StateDescription `json:"states,omitempty"`
}

// StateDescription pairs a comma-joined flag condition with replacement text.
type StateDescription struct {
	When string `json:"when"`
	Text string `json:"text"`
}

// SceneObject is a static object template. All of its dynamic state
// (possession, open/closed, revealed, lit) lives in the flag store.
type SceneObject struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`

	// VisibleOnEntry is the baseline visibility before any reveal flag.
	VisibleOnEntry bool `json:"visible_on_entry"`

	Takeable bool `json:"can_take"`
	Weight   int  `json:"weight,omitempty"`

	Container bool `json:"is_container,omitempty"`
	Capacity  int  `json:"capacity,omitempty"`

	// Contains seeds the container's contents when a game begins, and
	// Locked seeds its lock flag.
	Contains []string `json:"contains,omitempty"`
	Locked   bool     `json:"locked,omitempty"`

	// LightSource objects can be switched on to light dark scenes.
	LightSource bool `json:"light_source,omitempty"`

	// TakePoints and ExaminePoints are one-shot score awards.
	TakePoints    int `json:"take_points,omitempty"`
	ExaminePoints int `json:"examine_points,omitempty"`

	Descriptions ObjectDescriptions      `json:"descriptions"`
	Interactions map[string]*Interaction `json:"interactions,omitempty"`
}

// ObjectDescriptions holds an object's text variants.
type ObjectDescriptions struct {
	Default string             `json:"default"`
	Examine string             `json:"examine,omitempty"`
	Empty   string             `json:"empty,omitempty"`
	States  []StateDescription `json:"states,omitempty"`
}

// Interaction is a verb-specific, conditionally gated effect on an object.
type Interaction struct {
	Message        string             `json:"message"`
	FailureMessage string             `json:"failure_message,omitempty"`
	RequiredFlags  []string           `json:"required_flags,omitempty"`
	GrantsFlags    []string           `json:"grants_flags,omitempty"`
	RemovesFlags   []string           `json:"removes_flags,omitempty"`
	RevealsObjects []string           `json:"reveals_objects,omitempty"`
	Score          int                `json:"score,omitempty"`
	States         []StateDescription `json:"states,omitempty"`
}

// SceneExit connects a scene to another via a direction word.
type SceneExit struct {
	Direction      string   `json:"direction"`
	TargetScene    string   `json:"target_scene"`
	Description    string   `json:"description,omitempty"`
	RequiredFlags  []string `json:"required_flags,omitempty"`
	FailureMessage string   `json:"failure_message,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Scene) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("scene name is required"))
	}
	if s.Descriptions.Default == "" {
		el.Add(fmt.Errorf("scene default description is required"))
	}
	if !s.Light && s.Descriptions.Dark == "" {
		el.Add(fmt.Errorf("dark scene requires a dark description"))
	}

	for id, obj := range s.Objects {
		if err := obj.Validate(); err != nil {
			el.Add(fmt.Errorf("object %s: %w", id, err))
		}
	}

	seen := map[string]bool{}
	for i, exit := range s.Exits {
		if err := exit.Validate(); err != nil {
			el.Add(fmt.Errorf("exit %d: %w", i, err))
			continue
		}
		if seen[exit.Direction] {
			el.Add(fmt.Errorf("duplicate exit direction %q", exit.Direction))
		}
		seen[exit.Direction] = true
	}

	return el.Err()
}

// Exit returns the exit for a direction, or nil.
func (s *Scene) Exit(direction string) *SceneExit {
	for _, e := range s.Exits {
		if e.Direction == direction {
			return e
		}
	}
	return nil
}

func (o *SceneObject) Validate() error {
	el := errors.NewErrorList()

	if o.Name == "" {
		el.Add(fmt.Errorf("object name is required"))
	}
	if o.Weight < 0 {
		el.Add(fmt.Errorf("object weight cannot be negative"))
	}
	if o.Takeable && o.Weight == 0 {
		el.Add(fmt.Errorf("takeable object requires a weight"))
	}
	if o.Container && o.Capacity < 1 {
		el.Add(fmt.Errorf("container requires a capacity of at least 1"))
	}
	if !o.Container && o.Capacity != 0 {
		el.Add(fmt.Errorf("capacity is only valid on containers"))
	}
	if len(o.Contains) > 0 {
		if !o.Container {
			el.Add(fmt.Errorf("contains is only valid on containers"))
		} else if len(o.Contains) > o.Capacity {
			el.Add(fmt.Errorf("contains exceeds capacity"))
		}
	}
	if o.Locked && !o.Container {
		el.Add(fmt.Errorf("locked is only valid on containers"))
	}

	for verb, in := range o.Interactions {
		if err := in.Validate(); err != nil {
			el.Add(fmt.Errorf("interaction %q: %w", verb, err))
		}
	}

	return el.Err()
}

// Matches reports whether a player phrase refers to this object. The phrase
// is matched against the id, the display name, and any alias,
// case-insensitively.
func (o *SceneObject) Matches(id, phrase string) bool {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return false
	}
	if phrase == strings.ToLower(id) || phrase == strings.ToLower(o.Name) {
		return true
	}
	for _, alias := range o.Aliases {
		if phrase == strings.ToLower(alias) {
			return true
		}
	}
	return false
}

func (i *Interaction) Validate() error {
	if i.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func (e *SceneExit) Validate() error {
	el := errors.NewErrorList()

	if e.Direction == "" {
		el.Add(fmt.Errorf("direction is required"))
	}
	if e.TargetScene == "" {
		el.Add(fmt.Errorf("target_scene is required"))
	}

	return el.Err()
}
