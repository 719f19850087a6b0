package systems

import (
	"log"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/decker502/flagfield/pkg/utils"
)

// ComputeBaseRect 根据场地尺寸计算队伍基地矩形
// 结果只依赖规则和场地尺寸，相同输入总是得到相同矩形
func ComputeBaseRect(rules *config.RulesConfig, team types.Team, fieldWidth, fieldHeight float64) (utils.Rect, bool) {
	tc, ok := rules.Team(team)
	if !ok {
		return utils.Rect{}, false
	}
	layout := rules.Layout
	if tc.Column < 0 || tc.Column >= len(layout.Columns) || tc.Row < 0 || tc.Row >= len(layout.Rows) {
		return utils.Rect{}, false
	}
	return utils.NewRect(
		layout.Columns[tc.Column]*fieldWidth,
		layout.Rows[tc.Row]*fieldHeight,
		layout.BaseWidth*fieldWidth,
		layout.BaseHeight*fieldHeight,
	), true
}

// LayoutSystem 负责场地尺寸变化后的重新布局
//
// 重新布局的内容：
//   - 重新计算每个基地矩形
//   - 仍在本方且未被携带的旗帜排回本方基地
//   - 玩家按角色放回初始位置
//   - 被携带的旗帜同步到携带者
//   - 重新计算基地旗帜计数
type LayoutSystem struct {
	world    *game.World
	counters *FlagCounterSystem
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(world *game.World, counters *FlagCounterSystem) *LayoutSystem {
	return &LayoutSystem{
		world:    world,
		counters: counters,
	}
}

// Resize 更新场地尺寸，尺寸变化时重新布局
// 返回是否发生了重新布局
func (s *LayoutSystem) Resize(width, height float64) bool {
	if !s.world.SetFieldSize(width, height) {
		return false
	}
	s.Reposition()
	return true
}

// Reposition 按当前场地尺寸重新布局全部实体
func (s *LayoutSystem) Reposition() {
	w := s.world
	if w.FieldWidth <= 0 || w.FieldHeight <= 0 {
		return
	}

	s.layoutBases()
	s.layoutHomeFlags()
	s.layoutPlayers()

	if s.counters != nil {
		s.counters.Refresh()
	}

	log.Printf("[LayoutSystem] 重新布局完成: 场地 %.0fx%.0f", w.FieldWidth, w.FieldHeight)
}

func (s *LayoutSystem) layoutBases() {
	w := s.world
	for _, id := range w.Bases() {
		base, ok := ecs.GetComponent[*components.BaseComponent](w.EntityManager, id)
		if !ok {
			continue
		}
		rect, ok := ComputeBaseRect(w.Rules, base.Team, w.FieldWidth, w.FieldHeight)
		if !ok {
			log.Printf("[LayoutSystem] 警告: 队伍 %s 没有布局槽位", base.Team)
			continue
		}
		base.Rect = rect
	}
}

// layoutHomeFlags 只移动仍在本方的旗帜，被夺取或掉落在别处的旗帜保持原位
func (s *LayoutSystem) layoutHomeFlags() {
	w := s.world
	for _, id := range w.Flags() {
		flag, ok := w.Flag(id)
		if !ok || !flag.IsAtHome() {
			continue
		}
		rect, ok := w.BaseRect(flag.HomeTeam)
		if !ok {
			continue
		}
		pos, ok := w.Position(id)
		if !ok {
			continue
		}
		pos.X = rect.Left + config.HomeFlagInsetX + float64(flag.Index)*(w.Rules.FlagSize+config.HomeFlagSpacing)
		pos.Y = rect.Top + config.HomeFlagInsetY
	}
}

func (s *LayoutSystem) layoutPlayers() {
	w := s.world
	for _, id := range w.Players() {
		player, ok := w.Player(id)
		if !ok {
			continue
		}
		x, y, ok := s.HomePosition(id)
		if !ok {
			continue
		}

		// 回城动画中的玩家直接落位
		if w.IsReturning(id) {
			finishReturn(w, id)
		}

		pos, _ := w.Position(id)
		pos.X, pos.Y = x, y

		if player.IsCarrying() {
			syncCarriedFlag(w, id)
		}
	}
}

// HomePosition 返回玩家在当前布局下的初始位置（左上角）
//
// 守卫在基地正中，跑者在基地三分之一处，
// 追捕者在基地朝向场地中央的一侧外沿、纵向居中
func (s *LayoutSystem) HomePosition(id ecs.EntityID) (float64, float64, bool) {
	w := s.world
	player, ok := w.Player(id)
	if !ok {
		return 0, 0, false
	}
	rect, ok := w.BaseRect(player.Team)
	if !ok {
		return 0, 0, false
	}
	box, ok := w.Box(id)
	if !ok {
		return 0, 0, false
	}

	switch player.Role {
	case types.RoleGuardian:
		return rect.Left + rect.Width/2 - box.Width/2, rect.Top + rect.Height/2 - box.Height/2, true
	case types.RoleRunner:
		return rect.Left + rect.Width/3 - box.Width/2, rect.Top + rect.Height/3 - box.Height/2, true
	case types.RoleTagger:
		y := rect.Top + rect.Height/2 - box.Height/2
		if w.Rules.IsLeftColumn(player.Team) {
			return rect.Right() + config.TaggerBaseGap, y, true
		}
		return rect.Left - box.Width - config.TaggerBaseGap, y, true
	default:
		return 0, 0, false
	}
}
