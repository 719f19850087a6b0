package systems

import (
	"log"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/decker502/flagfield/pkg/utils"
	"github.com/repeale/fp-go/option"
)

// DragSystem 拖拽控制器
//
// 每个手势 Idle → Dragging → Idle。按下时记录指针与实体左上角的偏移，
// 之后每次移动：候选位置 = 指针 - 偏移，先限制在场地内，再按角色约束：
//   - 守卫：限制在本方基地内
//   - 追捕者：试探性移动，中心落入任意基地则回退
//   - 跑者：不受限制
//
// 移动生效后同步携带的旗帜，并立即执行一次交互扫描。
type DragSystem struct {
	world       *game.World
	interaction *InteractionSystem
	dragManager *utils.DragManager

	active           opt.Option[ecs.EntityID]
	offsetX, offsetY float64
	lastX, lastY     float64
}

// NewDragSystem 创建拖拽系统
// dragManager 为 nil 时只能通过 BeginAt/MoveTo/End 驱动
func NewDragSystem(world *game.World, interaction *InteractionSystem, dragManager *utils.DragManager) *DragSystem {
	return &DragSystem{
		world:       world,
		interaction: interaction,
		dragManager: dragManager,
	}
}

// Update 轮询鼠标/触摸状态并转换为拖拽事件（每帧调用一次）
func (s *DragSystem) Update() {
	s.cancelIfInactive()

	if s.dragManager == nil {
		return
	}
	s.dragManager.Update()
	info := s.dragManager.GetInfo()

	switch info.State {
	case utils.DragStateStarted:
		s.BeginAt(float64(info.StartX), float64(info.StartY))
	case utils.DragStateDragging:
		if !info.MultiTouch {
			s.MoveTo(float64(info.CurrentX), float64(info.CurrentY))
		}
	case utils.DragStateEnded:
		s.End()
	}
}

// cancelIfInactive 被拖拽的实体变为不可交互（如开始回城）时结束手势
func (s *DragSystem) cancelIfInactive() {
	if opt.IsNone(s.active) {
		return
	}
	if !s.world.IsInteractive(s.active.Value) {
		log.Printf("[DragSystem] %s 已不可交互，取消拖拽", s.world.Name(s.active.Value))
		s.active = opt.None[ecs.EntityID]()
	}
}

// HitTest 返回指针位置最上层的可交互实体
// 绘制顺序为 基地 < 静止旗帜 < 玩家 < 携带中的旗帜，命中检测从上往下
func (s *DragSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	w := s.world

	players := w.Players()
	for i := len(players) - 1; i >= 0; i-- {
		if s.hits(players[i], x, y) {
			return players[i], true
		}
	}

	flags := w.Flags()
	for i := len(flags) - 1; i >= 0; i-- {
		flag, ok := w.Flag(flags[i])
		if !ok || flag.IsCarried() {
			continue
		}
		if s.hits(flags[i], x, y) {
			return flags[i], true
		}
	}
	return 0, false
}

func (s *DragSystem) hits(id ecs.EntityID, x, y float64) bool {
	if !s.world.IsInteractive(id) {
		return false
	}
	box, ok := s.world.Box(id)
	return ok && box.Contains(x, y)
}

// BeginAt 在指针按下处开始手势
// 命中可拖拽实体时返回 true；命中旗帜或空白处时手势不生效
func (s *DragSystem) BeginAt(x, y float64) bool {
	s.active = opt.None[ecs.EntityID]()

	id, ok := s.HitTest(x, y)
	if !ok {
		return false
	}
	click, ok := ecs.GetComponent[*components.ClickableComponent](s.world.EntityManager, id)
	if !ok || !click.Draggable {
		return false
	}
	pos, ok := s.world.Position(id)
	if !ok {
		return false
	}

	s.active = opt.Some(id)
	s.offsetX = x - pos.X
	s.offsetY = y - pos.Y
	s.lastX, s.lastY = x, y
	return true
}

// MoveTo 指针移动到 (x, y)
// 返回是否处理了这次移动（无活动手势或指针未移动时返回 false）
func (s *DragSystem) MoveTo(x, y float64) bool {
	if opt.IsNone(s.active) {
		return false
	}
	if x == s.lastX && y == s.lastY {
		return false
	}
	s.lastX, s.lastY = x, y

	id := s.active.Value
	if !s.world.IsInteractive(id) {
		s.active = opt.None[ecs.EntityID]()
		return false
	}

	s.applyMove(id, x-s.offsetX, y-s.offsetY)
	if s.interaction != nil {
		s.interaction.Scan()
	}
	return true
}

// End 结束当前手势
func (s *DragSystem) End() {
	s.active = opt.None[ecs.EntityID]()
}

// Active 返回正在拖拽的实体
func (s *DragSystem) Active() (ecs.EntityID, bool) {
	if opt.IsNone(s.active) {
		return 0, false
	}
	return s.active.Value, true
}

// applyMove 按场地边界和角色约束移动实体
func (s *DragSystem) applyMove(id ecs.EntityID, x, y float64) {
	w := s.world
	pos, ok := w.Position(id)
	if !ok {
		return
	}
	box, ok := w.Box(id)
	if !ok {
		return
	}

	x, y = utils.ClampBoxInto(x, y, box.Width, box.Height, w.FieldRect())

	player, isPlayer := w.Player(id)
	if isPlayer && player.Role == types.RoleGuardian {
		if rect, ok := w.BaseRect(player.Team); ok {
			x, y = utils.ClampBoxInto(x, y, box.Width, box.Height, rect)
		}
	}

	oldX, oldY := pos.X, pos.Y
	pos.X, pos.Y = x, y

	if isPlayer && player.Role == types.RoleTagger {
		moved := utils.NewRect(x, y, box.Width, box.Height)
		if w.CenterInAnyBase(moved) {
			pos.X, pos.Y = oldX, oldY
		}
	}

	if isPlayer && player.IsCarrying() {
		syncCarriedFlag(w, id)
	}
}
