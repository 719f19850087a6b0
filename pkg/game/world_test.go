package game

import (
	"testing"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/decker502/flagfield/pkg/utils"
)

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(nil)
	if w.Rules == nil || w.Scheduler == nil || w.EntityManager == nil {
		t.Fatal("NewWorld should initialise rules, scheduler and entity manager")
	}
	if w.Rules.TotalFlags() != 18 {
		t.Errorf("Expected default rules with 18 flags, got %d", w.Rules.TotalFlags())
	}
}

func TestWorldSetFieldSize(t *testing.T) {
	w := NewWorld(config.DefaultRulesConfig())

	if !w.SetFieldSize(800, 600) {
		t.Error("First size should be a change")
	}
	if w.SetFieldSize(800, 600) {
		t.Error("Same size should not be a change")
	}
	if w.SetFieldSize(-1, 600) {
		t.Error("Invalid size should be ignored")
	}
	if w.FieldRect() != utils.NewRect(0, 0, 800, 600) {
		t.Errorf("Unexpected field rect %+v", w.FieldRect())
	}
}

func TestWorldRegistry(t *testing.T) {
	w := NewWorld(config.DefaultRulesConfig())
	em := w.EntityManager

	base := em.CreateEntity()
	em.AddComponent(base, &components.BaseComponent{Team: types.TeamRed, Rect: utils.NewRect(0, 0, 100, 100)})
	w.RegisterBase(types.TeamRed, "base-red", base)

	p1 := em.CreateEntity()
	em.AddComponent(p1, &components.PositionComponent{X: 10, Y: 10})
	em.AddComponent(p1, &components.CollisionComponent{Width: 40, Height: 40})
	em.AddComponent(p1, &components.PlayerComponent{Name: "red-G"})
	w.RegisterPlayer("red-G", p1)

	p2 := em.CreateEntity()
	em.AddComponent(p2, &components.PlayerComponent{Name: "red-T"})
	w.RegisterPlayer("red-T", p2)

	if players := w.Players(); len(players) != 2 || players[0] != p1 || players[1] != p2 {
		t.Errorf("Expected players in registration order, got %v", players)
	}
	if id, ok := w.Lookup("red-T"); !ok || id != p2 {
		t.Error("Lookup by name failed")
	}
	if w.Name(base) != "base-red" {
		t.Errorf("Expected name base-red, got %q", w.Name(base))
	}
	if _, ok := w.Lookup("missing"); ok {
		t.Error("Lookup of an unknown name should fail")
	}

	rect, ok := w.BaseRect(types.TeamRed)
	if !ok || rect.Width != 100 {
		t.Errorf("Unexpected base rect %+v", rect)
	}
	if _, ok := w.BaseRect(types.TeamBlue); ok {
		t.Error("Unregistered base should not be found")
	}

	box, ok := w.Box(p1)
	if !ok || box != utils.NewRect(10, 10, 40, 40) {
		t.Errorf("Unexpected box %+v", box)
	}
	if _, ok := w.Box(p2); ok {
		t.Error("Entity without position should have no box")
	}

	if !w.CenterInBase(box, types.TeamRed) {
		t.Error("Player centre (30, 30) should be inside the red base")
	}
	if w.CenterInAnyBase(utils.NewRect(90, 90, 40, 40)) {
		t.Error("Centre (110, 110) should be outside every base")
	}
}

func TestWorldInteractive(t *testing.T) {
	w := NewWorld(nil)
	id := w.EntityManager.CreateEntity()

	if w.IsInteractive(id) {
		t.Error("Entity without clickable component is not interactive")
	}
	w.SetInteractive(id, true) // 无组件时静默忽略

	w.EntityManager.AddComponent(id, &components.ClickableComponent{IsEnabled: true})
	w.SetInteractive(id, false)
	if w.IsInteractive(id) {
		t.Error("Expected entity to be disabled")
	}
}

func TestWorldFlagEntityCount(t *testing.T) {
	w := NewWorld(nil)
	for i := 0; i < 3; i++ {
		id := w.EntityManager.CreateEntity()
		w.EntityManager.AddComponent(id, &components.FlagComponent{})
	}
	w.EntityManager.CreateEntity()

	if got := w.FlagEntityCount(); got != 3 {
		t.Errorf("Expected 3 flag entities, got %d", got)
	}
}
