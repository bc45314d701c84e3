package state

import (
	"slices"
)

// GameState is the single mutable root for one play session. Everything
// dynamic about the world is encoded here: possession, open/closed containers,
// revealed objects, one-shot scoring markers, the turn counter. The world
// templates themselves are never written to.
type GameState struct {
	// CurrentScene is the id of the scene the player is in.
	CurrentScene string `json:"current_scene"`

	// Flags maps flag name to presence. An absent flag reads as false.
	Flags map[string]bool `json:"flags,omitempty"`

	// ObjectData holds per-object runtime data, currently container contents.
	ObjectData map[string]*ObjectData `json:"object_data,omitempty"`

	// Known records every object id the player has ever perceived,
	// independent of current visibility.
	Known map[string]bool `json:"known_objects,omitempty"`

	Score    int `json:"score"`
	MaxScore int `json:"max_score"`
	Turns    int `json:"turns"`
}

// ObjectData is the runtime counterpart of a SceneObject template.
type ObjectData struct {
	Contents []string `json:"contents,omitempty"`
}

// New creates a fresh state positioned at the given scene.
func New(startScene string) *GameState {
	return &GameState{
		CurrentScene: startScene,
		Flags:        map[string]bool{},
		ObjectData:   map[string]*ObjectData{},
		Known:        map[string]bool{},
	}
}

// MoveTo changes the current scene.
func (s *GameState) MoveTo(sceneId string) {
	s.CurrentScene = sceneId
}

// MarkKnown records that the player has perceived an object.
func (s *GameState) MarkKnown(objectId string) {
	if s.Known == nil {
		s.Known = map[string]bool{}
	}
	s.Known[objectId] = true
}

// IsKnown reports whether the player has ever perceived the object.
func (s *GameState) IsKnown(objectId string) bool {
	return s.Known[objectId]
}

// KnownObjects returns all perceived object ids in sorted order.
func (s *GameState) KnownObjects() []string {
	ids := make([]string, 0, len(s.Known))
	for id := range s.Known {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Contents returns the runtime contents of a container. A container with no
// runtime record is empty.
func (s *GameState) Contents(containerId string) []string {
	if od, ok := s.ObjectData[containerId]; ok {
		return od.Contents
	}
	return nil
}

// SetContents replaces the runtime contents of a container.
func (s *GameState) SetContents(containerId string, contents []string) {
	if s.ObjectData == nil {
		s.ObjectData = map[string]*ObjectData{}
	}
	od, ok := s.ObjectData[containerId]
	if !ok {
		od = &ObjectData{}
		s.ObjectData[containerId] = od
	}
	od.Contents = contents
}

// AddScore applies a score delta. Negative deltas are allowed for penalty
// events; idempotence per event is the caller's job via a scored flag.
func (s *GameState) AddScore(points int) {
	s.Score += points
}

// IncrementTurns advances the turn counter by one.
func (s *GameState) IncrementTurns() {
	s.Turns++
}

// Snapshot returns a deep copy suitable for persistence. Mutating the copy
// never affects the live state.
func (s *GameState) Snapshot() *GameState {
	cp := &GameState{
		CurrentScene: s.CurrentScene,
		Flags:        make(map[string]bool, len(s.Flags)),
		ObjectData:   make(map[string]*ObjectData, len(s.ObjectData)),
		Known:        make(map[string]bool, len(s.Known)),
		Score:        s.Score,
		MaxScore:     s.MaxScore,
		Turns:        s.Turns,
	}
	for k, v := range s.Flags {
		cp.Flags[k] = v
	}
	for id, od := range s.ObjectData {
		cp.ObjectData[id] = &ObjectData{Contents: slices.Clone(od.Contents)}
	}
	for id, v := range s.Known {
		cp.Known[id] = v
	}
	return cp
}

// Restore replaces this state's contents with those of a snapshot.
func (s *GameState) Restore(snap *GameState) {
	cp := snap.Snapshot()
	*s = *cp
}
