package world

import (
	"strings"
	"testing"
)

func validWorld() *World {
	return &World{
		Name:         "Test Manor",
		StartRoom:    "hall",
		TrophyKey:    "case",
		VictoryScore: 10,
		Rooms: map[string]*Room{
			"hall": {
				Key:   "hall",
				Name:  "Hall",
				Exits: map[string]string{"north": "cellar"},
				Items: []string{"case", "gem"},
			},
			"cellar": {
				Key:         "cellar",
				Name:        "Cellar",
				Exits:       map[string]string{"south": "hall"},
				IsHazardous: true,
				HazardDrain: 3,
			},
		},
		Objects: map[string]*Object{
			"case": {Key: "case", Name: "trophy case", Kind: KindContainer, Capacity: 10},
			"gem":  {Key: "gem", Name: "gem", Kind: KindItem, Takeable: true, Treasure: true, Value: 10, Size: 1},
			"box":  {Key: "box", Name: "box", Kind: KindContainer, Capacity: 2},
		},
		Foes: map[string]*Foe{
			"shade": {Key: "shade", Name: "shade", Room: "cellar", HP: 3, AC: 10},
		},
	}
}

func TestValidateAcceptsValidWorld(t *testing.T) {
	if err := validWorld().Validate(); err != nil {
		t.Fatalf("valid world failed validation: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(w *World)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(w *World) { w.Name = "" },
			wantErr: "no name",
		},
		{
			name:    "unknown start room",
			mutate:  func(w *World) { w.StartRoom = "void" },
			wantErr: "start room",
		},
		{
			name:    "unknown trophy container",
			mutate:  func(w *World) { w.TrophyKey = "missing" },
			wantErr: "trophy container",
		},
		{
			name: "trophy without capacity",
			mutate: func(w *World) {
				w.Objects["case"].Capacity = 0
			},
			wantErr: "no capacity",
		},
		{
			name: "exit to unknown room",
			mutate: func(w *World) {
				w.Rooms["hall"].Exits["east"] = "void"
			},
			wantErr: "unknown room",
		},
		{
			name: "gate on missing exit",
			mutate: func(w *World) {
				w.Rooms["hall"].Gates = map[string]ExitGate{"west": {Flag: "f", Value: true}}
			},
			wantErr: "no exit",
		},
		{
			name: "hazardous room without drain",
			mutate: func(w *World) {
				w.Rooms["cellar"].HazardDrain = 0
			},
			wantErr: "hazard_drain",
		},
		{
			name: "room item unknown",
			mutate: func(w *World) {
				w.Rooms["hall"].Items = append(w.Rooms["hall"].Items, "phantom")
			},
			wantErr: "unknown object",
		},
		{
			name: "object placed twice",
			mutate: func(w *World) {
				w.Objects["box"].Contains = []string{"gem"}
			},
			wantErr: "placed in both",
		},
		{
			name: "object contains itself",
			mutate: func(w *World) {
				w.Rooms["hall"].Items = []string{"case"}
				w.Objects["box"].Contains = []string{"box"}
			},
			wantErr: "contains itself",
		},
		{
			name: "contents without capacity",
			mutate: func(w *World) {
				w.Rooms["hall"].Items = []string{"case"}
				w.Objects["gem"].Contains = []string{"box"}
			},
			wantErr: "no capacity",
		},
		{
			name: "container starts overfull",
			mutate: func(w *World) {
				w.Rooms["hall"].Items = []string{"case"}
				w.Objects["gem"].Size = 3
				w.Objects["box"].Contains = []string{"gem"}
			},
			wantErr: "overfull",
		},
		{
			name: "unknown opens_with",
			mutate: func(w *World) {
				w.Objects["box"].OpensWith = "missing_key"
			},
			wantErr: "unknown object",
		},
		{
			name: "mismatched room key",
			mutate: func(w *World) {
				w.Rooms["hall"].Key = "foyer"
			},
			wantErr: "mismatched key",
		},
		{
			name: "foe in unknown room",
			mutate: func(w *World) {
				w.Foes["shade"].Room = "void"
			},
			wantErr: "unknown room",
		},
		{
			name: "foe without hit points",
			mutate: func(w *World) {
				w.Foes["shade"].HP = 0
			},
			wantErr: "no hit points",
		},
		{
			name: "foe reveals unknown item",
			mutate: func(w *World) {
				w.Foes["shade"].Reveals = []string{"phantom"}
			},
			wantErr: "unknown object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWorld()
			tt.mutate(w)
			err := w.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBackfillsDefaults(t *testing.T) {
	data := []byte(`{
		"name": "Tiny",
		"start_room": "room",
		"rooms": {
			"room": {"name": "Room", "description": "A room."}
		},
		"objects": {
			"pebble": {"name": "pebble", "kind": "item", "takeable": true}
		}
	}`)

	w, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if w.Rooms["room"].Key != "room" {
		t.Errorf("room key not backfilled: %q", w.Rooms["room"].Key)
	}
	if w.Objects["pebble"].Key != "pebble" {
		t.Errorf("object key not backfilled: %q", w.Objects["pebble"].Key)
	}
	if w.Objects["pebble"].Size != 1 {
		t.Errorf("object size should default to 1, got %d", w.Objects["pebble"].Size)
	}
}

func TestParseRejectsInvalidWorld(t *testing.T) {
	data := []byte(`{
		"name": "Broken",
		"start_room": "nowhere",
		"rooms": {"room": {"name": "Room"}},
		"objects": {}
	}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected Parse to reject a world with an unknown start room")
	}

	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected Parse to reject malformed JSON")
	}
}

func TestObjectMatches(t *testing.T) {
	obj := &Object{Key: "brass_lamp", Name: "brass lamp", AltNames: []string{"lamp", "lantern"}}

	tests := []struct {
		word string
		want bool
	}{
		{"brass lamp", true},
		{"Brass Lamp", true},
		{"lamp", true},
		{"LANTERN", true},
		{"brass_lamp", true},
		{"torch", false},
		{"", false},
		{"  ", false},
	}
	for _, tt := range tests {
		if got := obj.Matches(tt.word); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestFindObjectSearchesCandidatesInOrder(t *testing.T) {
	w := validWorld()
	w.Objects["gem"].AltNames = []string{"stone"}

	key, ok := w.FindObject("stone", []string{"case", "gem"})
	if !ok || key != "gem" {
		t.Errorf("FindObject = %q, %v; want gem, true", key, ok)
	}

	if _, ok := w.FindObject("stone", []string{"case"}); ok {
		t.Error("FindObject should not match outside its candidate list")
	}
}
