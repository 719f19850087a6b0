package entities

import (
	"testing"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/types"
)

func TestEntityNames(t *testing.T) {
	if got := BaseName(types.TeamRed); got != "base-red" {
		t.Errorf("Expected base-red, got %s", got)
	}
	if got := FlagName(types.TeamOrange, 2); got != "flag-orange-2" {
		t.Errorf("Expected flag-orange-2, got %s", got)
	}
	if got := PlayerName(types.TeamBlue, types.RoleTagger); got != "blue-T" {
		t.Errorf("Expected blue-T, got %s", got)
	}
}

func TestPopulateField(t *testing.T) {
	world := game.NewWorld(config.DefaultRulesConfig())
	if err := PopulateField(world); err != nil {
		t.Fatalf("PopulateField failed: %v", err)
	}

	if got := len(world.Bases()); got != 6 {
		t.Errorf("Expected 6 bases, got %d", got)
	}
	if got := len(world.Players()); got != 18 {
		t.Errorf("Expected 18 players, got %d", got)
	}
	if got := len(world.Flags()); got != 18 {
		t.Errorf("Expected 18 flags, got %d", got)
	}
	if got := world.FlagEntityCount(); got != world.Rules.TotalFlags() {
		t.Errorf("Expected %d flag entities, got %d", world.Rules.TotalFlags(), got)
	}

	// 交互扫描按 队伍 × 角色 的顺序进行
	first, _ := world.Player(world.Players()[0])
	last, _ := world.Player(world.Players()[17])
	if first.Name != "red-G" || last.Name != "orange-R" {
		t.Errorf("Unexpected player order: first %s, last %s", first.Name, last.Name)
	}

	if err := PopulateField(world); err == nil {
		t.Error("Populating twice should fail")
	}
}

func TestPlayerEntityComponents(t *testing.T) {
	world := game.NewWorld(nil)
	id, err := NewPlayerEntity(world, types.TeamGreen, types.RoleRunner)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	player, ok := world.Player(id)
	if !ok {
		t.Fatal("Missing PlayerComponent")
	}
	if player.Name != "green-R" || player.Team != types.TeamGreen || player.Role != types.RoleRunner {
		t.Errorf("Unexpected player %+v", player)
	}
	if player.IsCarrying() || player.IsScoring {
		t.Error("New player should be idle")
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](world.EntityManager, id)
	if !ok || col.Width != 40 || col.Height != 40 {
		t.Errorf("Expected 40x40 collision box, got %+v", col)
	}
	click, ok := ecs.GetComponent[*components.ClickableComponent](world.EntityManager, id)
	if !ok || !click.IsEnabled || !click.Draggable {
		t.Error("Players should be interactive and draggable")
	}
	if !ecs.HasComponent[*components.VisualStateComponent](world.EntityManager, id) {
		t.Error("Players need a visual state component")
	}
}

func TestFlagEntityComponents(t *testing.T) {
	world := game.NewWorld(nil)
	id, err := NewFlagEntity(world, types.TeamPurple, 1)
	if err != nil {
		t.Fatalf("NewFlagEntity failed: %v", err)
	}

	flag, ok := world.Flag(id)
	if !ok {
		t.Fatal("Missing FlagComponent")
	}
	if flag.Team != types.TeamPurple || flag.HomeTeam != types.TeamPurple || flag.Index != 1 {
		t.Errorf("Unexpected flag %+v", flag)
	}
	if !flag.IsAtHome() {
		t.Error("New flag should be at home")
	}

	click, _ := ecs.GetComponent[*components.ClickableComponent](world.EntityManager, id)
	if !click.IsEnabled || click.Draggable {
		t.Error("Flags should be interactive but not draggable")
	}
}

func TestFactoriesRejectInvalidInput(t *testing.T) {
	world := game.NewWorld(nil)

	if _, err := NewBaseEntity(nil, types.TeamRed); err == nil {
		t.Error("Expected error for nil world")
	}
	if _, err := NewBaseEntity(world, types.TeamUnknown); err == nil {
		t.Error("Expected error for unknown team")
	}
	if _, err := NewPlayerEntity(world, types.TeamRed, types.Role(9)); err == nil {
		t.Error("Expected error for invalid role")
	}
	if _, err := NewFlagEntity(world, types.Team(42), 0); err == nil {
		t.Error("Expected error for invalid team")
	}
}
