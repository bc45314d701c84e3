package world

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func validScene() *Scene {
	return &Scene{
		Name:  "Kitchen",
		Light: true,
		Descriptions: SceneDescriptions{
			Default: "A small kitchen.",
		},
		Objects: map[string]*SceneObject{
			"sack": {
				Name:         "sack",
				Takeable:     true,
				Weight:       3,
				Descriptions: ObjectDescriptions{Default: "A brown sack."},
			},
		},
		Exits: []*SceneExit{
			{Direction: "west", TargetScene: "hall"},
		},
	}
}

func TestScene_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Scene)
		expErr bool
	}{
		"valid scene": {
			mutate: func(s *Scene) {},
		},
		"missing name": {
			mutate: func(s *Scene) { s.Name = "" },
			expErr: true,
		},
		"missing default description": {
			mutate: func(s *Scene) { s.Descriptions.Default = "" },
			expErr: true,
		},
		"dark scene without dark description": {
			mutate: func(s *Scene) { s.Light = false },
			expErr: true,
		},
		"dark scene with dark description": {
			mutate: func(s *Scene) {
				s.Light = false
				s.Descriptions.Dark = "It is pitch black."
			},
		},
		"takeable object without weight": {
			mutate: func(s *Scene) { s.Objects["sack"].Weight = 0 },
			expErr: true,
		},
		"container without capacity": {
			mutate: func(s *Scene) {
				s.Objects["sack"].Container = true
			},
			expErr: true,
		},
		"capacity on non-container": {
			mutate: func(s *Scene) { s.Objects["sack"].Capacity = 2 },
			expErr: true,
		},
		"interaction without message": {
			mutate: func(s *Scene) {
				s.Objects["sack"].Interactions = map[string]*Interaction{
					"open": {},
				}
			},
			expErr: true,
		},
		"exit without target": {
			mutate: func(s *Scene) { s.Exits[0].TargetScene = "" },
			expErr: true,
		},
		"duplicate exit direction": {
			mutate: func(s *Scene) {
				s.Exits = append(s.Exits, &SceneExit{Direction: "west", TargetScene: "cellar"})
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := validScene()
			tt.mutate(s)

			err := s.Validate()
			if tt.expErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.expErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSceneObject_Matches(t *testing.T) {
	obj := &SceneObject{
		Name:    "brass lamp",
		Aliases: []string{"lamp", "lantern"},
	}

	tests := map[string]struct {
		phrase string
		exp    bool
	}{
		"id match":              {phrase: "lamp-1", exp: true},
		"name match":            {phrase: "brass lamp", exp: true},
		"name case insensitive": {phrase: "Brass Lamp", exp: true},
		"alias match":           {phrase: "lantern", exp: true},
		"short alias":           {phrase: "lamp", exp: true},
		"no match":              {phrase: "sword", exp: false},
		"empty phrase":          {phrase: "", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "match", obj.Matches("lamp-1", tt.phrase), tt.exp)
		})
	}
}

func TestScene_Exit(t *testing.T) {
	s := validScene()

	if s.Exit("west") == nil {
		t.Error("expected west exit")
	}
	if s.Exit("east") != nil {
		t.Error("expected no east exit")
	}
}
