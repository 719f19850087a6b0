package game

import (
	"log"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/decker502/flagfield/pkg/utils"
)

// World 一局游戏的全部状态
//
// World 由场景持有并注入到各个系统，不使用全局单例。
// 实体在开局时一次性创建并登记，之后不再销毁，
// 因此登记表（按队伍查基地、按名称查实体）在整局中保持有效。
type World struct {
	// EntityManager 组件存储
	EntityManager *ecs.EntityManager
	// Rules 规则配置
	Rules *config.RulesConfig
	// Scheduler 游戏时间延时任务
	Scheduler *Scheduler

	// FieldWidth, FieldHeight 当前场地尺寸（像素）
	FieldWidth  float64
	FieldHeight float64

	// ScanCount 交互扫描次数，调试面板显示
	ScanCount int
	// LastAuditError 最近一次旗帜总数检查的结果，nil 表示一致
	LastAuditError error

	bases   map[types.Team]ecs.EntityID
	players []ecs.EntityID
	flags   []ecs.EntityID
	byName  map[string]ecs.EntityID
	names   map[ecs.EntityID]string
}

// NewWorld 创建空的游戏世界
func NewWorld(rules *config.RulesConfig) *World {
	if rules == nil {
		rules = config.DefaultRulesConfig()
	}
	return &World{
		EntityManager: ecs.NewEntityManager(),
		Rules:         rules,
		Scheduler:     NewScheduler(),
		bases:         make(map[types.Team]ecs.EntityID),
		byName:        make(map[string]ecs.EntityID),
		names:         make(map[ecs.EntityID]string),
	}
}

// SetFieldSize 更新场地尺寸，返回尺寸是否发生变化
// 非正尺寸被忽略
func (w *World) SetFieldSize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == w.FieldWidth && height == w.FieldHeight {
		return false
	}
	w.FieldWidth = width
	w.FieldHeight = height
	return true
}

// FieldRect 返回场地矩形
func (w *World) FieldRect() utils.Rect {
	return utils.NewRect(0, 0, w.FieldWidth, w.FieldHeight)
}

// RegisterBase 登记基地实体
func (w *World) RegisterBase(team types.Team, name string, id ecs.EntityID) {
	w.bases[team] = id
	w.register(name, id)
}

// RegisterPlayer 登记玩家实体，登记顺序即交互扫描顺序
func (w *World) RegisterPlayer(name string, id ecs.EntityID) {
	w.players = append(w.players, id)
	w.register(name, id)
}

// RegisterFlag 登记旗帜实体
func (w *World) RegisterFlag(name string, id ecs.EntityID) {
	w.flags = append(w.flags, id)
	w.register(name, id)
}

func (w *World) register(name string, id ecs.EntityID) {
	if prev, ok := w.byName[name]; ok && prev != id {
		log.Printf("[World] 警告: 名称 %s 重复登记 (%d -> %d)", name, prev, id)
	}
	w.byName[name] = id
	w.names[id] = name
}

// Lookup 按名称查找实体
func (w *World) Lookup(name string) (ecs.EntityID, bool) {
	id, ok := w.byName[name]
	return id, ok
}

// Name 返回实体名称，未登记时返回空字符串
func (w *World) Name(id ecs.EntityID) string {
	return w.names[id]
}

// Players 返回按创建顺序排列的玩家实体
// 返回的切片属于 World，调用方不得修改
func (w *World) Players() []ecs.EntityID {
	return w.players
}

// Flags 返回按创建顺序排列的旗帜实体
func (w *World) Flags() []ecs.EntityID {
	return w.flags
}

// Base 返回队伍的基地实体
func (w *World) Base(team types.Team) (ecs.EntityID, bool) {
	id, ok := w.bases[team]
	return id, ok
}

// Bases 按队伍顺序返回基地实体
func (w *World) Bases() []ecs.EntityID {
	result := make([]ecs.EntityID, 0, len(w.bases))
	for _, team := range types.AllTeams() {
		if id, ok := w.bases[team]; ok {
			result = append(result, id)
		}
	}
	return result
}

// BaseRect 返回队伍基地的当前矩形
func (w *World) BaseRect(team types.Team) (utils.Rect, bool) {
	id, ok := w.bases[team]
	if !ok {
		return utils.Rect{}, false
	}
	base, ok := ecs.GetComponent[*components.BaseComponent](w.EntityManager, id)
	if !ok {
		return utils.Rect{}, false
	}
	return base.Rect, true
}

// Player 返回玩家组件
func (w *World) Player(id ecs.EntityID) (*components.PlayerComponent, bool) {
	return ecs.GetComponent[*components.PlayerComponent](w.EntityManager, id)
}

// Flag 返回旗帜组件
func (w *World) Flag(id ecs.EntityID) (*components.FlagComponent, bool) {
	return ecs.GetComponent[*components.FlagComponent](w.EntityManager, id)
}

// Position 返回位置组件
func (w *World) Position(id ecs.EntityID) (*components.PositionComponent, bool) {
	return ecs.GetComponent[*components.PositionComponent](w.EntityManager, id)
}

// Box 返回实体当前的碰撞矩形
func (w *World) Box(id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := w.Position(id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](w.EntityManager, id)
	if !ok {
		return utils.Rect{}, false
	}
	return components.Box(pos, col), true
}

// SetInteractive 设置实体是否接收指针事件
func (w *World) SetInteractive(id ecs.EntityID, enabled bool) {
	if click, ok := ecs.GetComponent[*components.ClickableComponent](w.EntityManager, id); ok {
		click.IsEnabled = enabled
	}
}

// IsInteractive 判断实体当前是否接收指针事件
func (w *World) IsInteractive(id ecs.EntityID) bool {
	click, ok := ecs.GetComponent[*components.ClickableComponent](w.EntityManager, id)
	return ok && click.IsEnabled
}

// FlagEntityCount 统计当前拥有旗帜组件的实体数
func (w *World) FlagEntityCount() int {
	return len(ecs.GetEntitiesWith1[*components.FlagComponent](w.EntityManager))
}

// CenterInBase 判断矩形中心是否严格位于指定队伍的基地内
func (w *World) CenterInBase(box utils.Rect, team types.Team) bool {
	rect, ok := w.BaseRect(team)
	if !ok {
		return false
	}
	return rect.ContainsCenterOf(box)
}

// CenterInAnyBase 判断矩形中心是否严格位于任意基地内
func (w *World) CenterInAnyBase(box utils.Rect) bool {
	for _, id := range w.Bases() {
		base, ok := ecs.GetComponent[*components.BaseComponent](w.EntityManager, id)
		if ok && base.Rect.ContainsCenterOf(box) {
			return true
		}
	}
	return false
}

// IsReturning 判断玩家是否处于回城动画中
func (w *World) IsReturning(id ecs.EntityID) bool {
	visual, ok := ecs.GetComponent[*components.VisualStateComponent](w.EntityManager, id)
	return ok && visual.Returning
}
