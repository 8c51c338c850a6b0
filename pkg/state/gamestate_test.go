package state

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/hollowoak/manor-engine/pkg/world"
)

func testWorld() *world.World {
	return &world.World{
		Name:      "Test Manor",
		StartRoom: "hall",
		LampFuel:  30,
		Rooms: map[string]*world.Room{
			"hall": {
				Key:   "hall",
				Name:  "Hall",
				Exits: map[string]string{"north": "study"},
				Items: []string{"chest"},
			},
			"study": {
				Key:   "study",
				Name:  "Study",
				Exits: map[string]string{"south": "hall"},
			},
		},
		Objects: map[string]*world.Object{
			"chest": {
				Key: "chest", Name: "chest", Kind: world.KindContainer,
				Capacity: 5, Contains: []string{"coin"},
			},
			"coin": {
				Key: "coin", Name: "coin", Kind: world.KindItem,
				Takeable: true, Size: 1,
			},
			"table": {
				Key: "table", Name: "table", Kind: world.KindContainer,
				Capacity: 3, AlwaysOpen: true,
			},
		},
		Foes: map[string]*world.Foe{
			"shade": {Key: "shade", Name: "shade", Room: "study", HP: 4, AC: 10},
		},
	}
}

func TestNewGameState(t *testing.T) {
	w := testWorld()
	gs := NewGameState(w)

	if gs.ID == uuid.Nil {
		t.Error("expected a session ID")
	}
	if gs.World != "Test Manor" {
		t.Errorf("World = %q, want %q", gs.World, "Test Manor")
	}
	if gs.Room != "hall" {
		t.Errorf("Room = %q, want %q", gs.Room, "hall")
	}
	if gs.Sanity != SanityMax {
		t.Errorf("Sanity = %d, want %d", gs.Sanity, SanityMax)
	}
	if gs.LampFuel != 30 {
		t.Errorf("LampFuel = %d, want 30", gs.LampFuel)
	}
	if gs.Score != 0 || gs.Won {
		t.Errorf("expected fresh score, got score=%d won=%v", gs.Score, gs.Won)
	}
	if !gs.Visited["hall"] {
		t.Error("start room should be marked visited")
	}
	if !reflect.DeepEqual(gs.RoomItems["hall"], []string{"chest"}) {
		t.Errorf("hall items = %v", gs.RoomItems["hall"])
	}
	if !reflect.DeepEqual(gs.ContainerContents["chest"], []string{"coin"}) {
		t.Errorf("chest contents = %v", gs.ContainerContents["chest"])
	}
	if !gs.IsOpen("table") {
		t.Error("always-open containers should start open")
	}
	if gs.IsOpen("chest") {
		t.Error("ordinary containers should start closed")
	}
	if gs.FoeHP["shade"] != 4 {
		t.Errorf("shade HP = %d, want 4", gs.FoeHP["shade"])
	}
}

func TestNewGameStateDoesNotShareCatalogSlices(t *testing.T) {
	w := testWorld()
	gs := NewGameState(w)

	gs.RemoveFromRoom("hall", "chest")
	if !reflect.DeepEqual(w.Rooms["hall"].Items, []string{"chest"}) {
		t.Error("mutating session containment changed the catalog")
	}

	gs.RemoveFromContainer("chest", "coin")
	if !reflect.DeepEqual(w.Objects["chest"].Contains, []string{"coin"}) {
		t.Error("mutating container contents changed the catalog")
	}
}

func TestInventoryConservation(t *testing.T) {
	gs := NewGameState(testWorld())

	// coin: chest -> inventory -> room -> inventory. At each step it
	// must exist in exactly one place.
	inPlaces := func(key string) int {
		n := 0
		if gs.HasItem(key) {
			n++
		}
		for _, items := range gs.RoomItems {
			for _, item := range items {
				if item == key {
					n++
				}
			}
		}
		for _, items := range gs.ContainerContents {
			for _, item := range items {
				if item == key {
					n++
				}
			}
		}
		return n
	}

	if inPlaces("coin") != 1 {
		t.Fatalf("coin should start in exactly one place, found %d", inPlaces("coin"))
	}

	gs.RemoveFromContainer("chest", "coin")
	gs.AddItem("coin")
	if inPlaces("coin") != 1 {
		t.Errorf("after take: coin in %d places", inPlaces("coin"))
	}

	gs.RemoveItem("coin")
	gs.AddToRoom("hall", "coin")
	if inPlaces("coin") != 1 {
		t.Errorf("after drop: coin in %d places", inPlaces("coin"))
	}

	gs.RemoveFromRoom("hall", "coin")
	gs.AddItem("coin")
	if inPlaces("coin") != 1 {
		t.Errorf("after re-take: coin in %d places", inPlaces("coin"))
	}

	// Duplicate adds are no-ops.
	gs.AddItem("coin")
	if inPlaces("coin") != 1 {
		t.Errorf("duplicate AddItem created a copy: coin in %d places", inPlaces("coin"))
	}
}

func TestFlags(t *testing.T) {
	gs := NewGameState(testWorld())

	if gs.FlagIsTrue("nope") {
		t.Error("unset flag should not read true")
	}
	if got := gs.GetFlag("nope"); got != BoolFlag(false) {
		t.Errorf("unset flag = %+v, want false bool", got)
	}

	gs.SetFlag("gallery_unlocked", BoolFlag(true))
	if !gs.FlagIsTrue("gallery_unlocked") {
		t.Error("set flag should read true")
	}

	gs.SetFlag("bell_rings", IntFlag(3))
	if gs.FlagIsTrue("bell_rings") {
		t.Error("int flags are never boolean-true")
	}
	if got := gs.GetFlag("bell_rings"); got != IntFlag(3) {
		t.Errorf("int flag = %+v, want 3", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	gs := NewGameState(testWorld())
	gs.SetFlag("seen", BoolFlag(true))
	gs.AddItem("coin")

	cp := gs.Clone()
	if !reflect.DeepEqual(gs, cp) {
		t.Fatal("clone should equal the original")
	}

	cp.Sanity = 10
	cp.AddItem("extra")
	cp.SetFlag("seen", BoolFlag(false))
	cp.AddToRoom("study", "coin")
	cp.FoeHP["shade"] = 0
	cp.OpenContainers["chest"] = true

	if gs.Sanity != SanityMax {
		t.Error("clone mutation leaked into original sanity")
	}
	if gs.HasItem("extra") {
		t.Error("clone mutation leaked into original inventory")
	}
	if !gs.FlagIsTrue("seen") {
		t.Error("clone mutation leaked into original flags")
	}
	if len(gs.ItemsInRoom("study")) != 0 {
		t.Error("clone mutation leaked into original room items")
	}
	if gs.FoeHP["shade"] != 4 {
		t.Error("clone mutation leaked into original foe hp")
	}
	if gs.IsOpen("chest") {
		t.Error("clone mutation leaked into original open containers")
	}
}

func TestFreshGameStateJSONRoundTrip(t *testing.T) {
	// A brand-new session is the most common state to cross the store;
	// its empty collections must survive the trip, not come back nil.
	gs := NewGameState(testWorld())

	data, err := json.Marshal(gs)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out GameState
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(gs, &out) {
		t.Errorf("round trip changed state:\n before: %+v\n after:  %+v", gs, &out)
	}
	if out.Inventory == nil {
		t.Error("empty inventory came back nil")
	}
	if out.Flags == nil || out.ScoredTreasures == nil || out.OpenContainers == nil {
		t.Error("empty maps came back nil")
	}
}

func TestGameStateJSONRoundTrip(t *testing.T) {
	gs := NewGameState(testWorld())
	gs.SetFlag("gallery_unlocked", BoolFlag(true))
	gs.SetFlag("bell_rings", IntFlag(2))
	gs.AddItem("coin")
	gs.RemoveFromContainer("chest", "coin")
	gs.Turns = 17
	gs.Sanity = 42
	gs.LampFuel = 3
	gs.LampLit = true
	gs.Score = 25
	gs.ScoredTreasures["coin"] = true
	gs.MarkVisited("study")

	data, err := json.Marshal(gs)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out GameState
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(gs, &out) {
		t.Errorf("round trip changed state:\n before: %+v\n after:  %+v", gs, &out)
	}
}
