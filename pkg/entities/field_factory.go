package entities

import (
	"fmt"
	"log"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/types"
)

// BaseName 返回基地实体名称，如 "base-red"
func BaseName(team types.Team) string {
	return fmt.Sprintf("base-%s", team)
}

// FlagName 返回旗帜实体名称，如 "flag-red-0"
func FlagName(team types.Team, index int) string {
	return fmt.Sprintf("flag-%s-%d", team, index)
}

// PlayerName 返回玩家实体名称，如 "red-R"
func PlayerName(team types.Team, role types.Role) string {
	return fmt.Sprintf("%s-%s", team, role.Letter())
}

// NewBaseEntity 创建基地实体
// 基地矩形由 LayoutSystem 在获得场地尺寸后计算
//
// 参数:
//   - world: 游戏世界
//   - team: 所属队伍
//
// 返回:
//   - ecs.EntityID: 创建的基地实体ID
//   - error: 队伍非法时返回错误
func NewBaseEntity(world *game.World, team types.Team) (ecs.EntityID, error) {
	if world == nil {
		return 0, fmt.Errorf("world cannot be nil")
	}
	if !team.IsValid() {
		return 0, fmt.Errorf("invalid team %v", team)
	}

	em := world.EntityManager
	id := em.CreateEntity()
	em.AddComponent(id, &components.BaseComponent{Team: team})

	world.RegisterBase(team, BaseName(team), id)
	return id, nil
}

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - world: 游戏世界
//   - team: 所属队伍
//   - role: 角色
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID
//   - error: 队伍或角色非法时返回错误
func NewPlayerEntity(world *game.World, team types.Team, role types.Role) (ecs.EntityID, error) {
	if world == nil {
		return 0, fmt.Errorf("world cannot be nil")
	}
	if !team.IsValid() {
		return 0, fmt.Errorf("invalid team %v", team)
	}
	if !role.IsValid() {
		return 0, fmt.Errorf("invalid role %v", role)
	}

	em := world.EntityManager
	size := world.Rules.PlayerSize
	name := PlayerName(team, role)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(id, &components.ClickableComponent{IsEnabled: true, Draggable: true})
	em.AddComponent(id, &components.VisualStateComponent{})
	em.AddComponent(id, &components.PlayerComponent{
		Name: name,
		Team: team,
		Role: role,
	})

	world.RegisterPlayer(name, id)
	return id, nil
}

// NewFlagEntity 创建旗帜实体
// 旗帜不可拖拽，但在静止时会挡住下方玩家的点击
//
// 参数:
//   - world: 游戏世界
//   - team: 初始所属队伍
//   - index: 在本方基地中的序号
//
// 返回:
//   - ecs.EntityID: 创建的旗帜实体ID
//   - error: 队伍非法时返回错误
func NewFlagEntity(world *game.World, team types.Team, index int) (ecs.EntityID, error) {
	if world == nil {
		return 0, fmt.Errorf("world cannot be nil")
	}
	if !team.IsValid() {
		return 0, fmt.Errorf("invalid team %v", team)
	}

	em := world.EntityManager
	size := world.Rules.FlagSize
	name := FlagName(team, index)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(id, &components.ClickableComponent{IsEnabled: true, Draggable: false})
	em.AddComponent(id, &components.FlagComponent{
		Name:     name,
		HomeTeam: team,
		Index:    index,
		Team:     team,
	})

	world.RegisterFlag(name, id)
	return id, nil
}

// PopulateField 创建整局的全部实体
//
// 创建顺序决定绘制层级和交互扫描顺序：
//  1. 每队一个基地
//  2. 每队守卫、追捕者、跑者各一名
//  3. 每队 FlagsPerTeam 面旗帜
//
// 只能在空世界上调用一次
func PopulateField(world *game.World) error {
	if world == nil {
		return fmt.Errorf("world cannot be nil")
	}
	if len(world.Players()) > 0 || len(world.Flags()) > 0 {
		return fmt.Errorf("field already populated")
	}

	teams := make([]types.Team, 0, len(world.Rules.Teams))
	for _, tc := range world.Rules.Teams {
		teams = append(teams, tc.Name)
	}

	for _, team := range teams {
		if _, err := NewBaseEntity(world, team); err != nil {
			return fmt.Errorf("create base %s: %w", team, err)
		}
	}

	for _, team := range teams {
		for _, role := range types.AllRoles() {
			if _, err := NewPlayerEntity(world, team, role); err != nil {
				return fmt.Errorf("create player %s: %w", PlayerName(team, role), err)
			}
		}
	}

	for _, team := range teams {
		for i := 0; i < world.Rules.FlagsPerTeam; i++ {
			if _, err := NewFlagEntity(world, team, i); err != nil {
				return fmt.Errorf("create flag %s: %w", FlagName(team, i), err)
			}
		}
	}

	log.Printf("[Entities] 场地实体创建完成: %d 个基地, %d 名玩家, %d 面旗帜",
		len(world.Bases()), len(world.Players()), len(world.Flags()))
	return nil
}
