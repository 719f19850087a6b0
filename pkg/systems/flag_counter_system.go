package systems

import (
	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/types"
)

// counterRefreshKey 计数刷新任务全局只有一个
var counterRefreshKey = game.TaskKey{Entity: ecs.InvalidEntity, Kind: game.TaskCounterRefresh}

// FlagCounterSystem 计算每个基地计数牌上的数字
//
// 计数是纯几何的：统计与基地矩形重叠且未被携带的旗帜，
// 不区分旗帜当前属于哪一队。
type FlagCounterSystem struct {
	world *game.World
}

// NewFlagCounterSystem 创建计数系统
func NewFlagCounterSystem(world *game.World) *FlagCounterSystem {
	return &FlagCounterSystem{world: world}
}

// Refresh 立即重新计算全部基地的计数
func (s *FlagCounterSystem) Refresh() {
	w := s.world
	for _, baseID := range w.Bases() {
		base, ok := ecs.GetComponent[*components.BaseComponent](w.EntityManager, baseID)
		if !ok {
			continue
		}
		count := 0
		for _, flagID := range w.Flags() {
			flag, ok := w.Flag(flagID)
			if !ok || flag.IsCarried() {
				continue
			}
			box, ok := w.Box(flagID)
			if ok && box.Overlaps(base.Rect) {
				count++
			}
		}
		base.FlagCount = count
	}
}

// ScheduleRefresh 延迟刷新计数
// 已有待执行的刷新时不重复调度，同一时段内的多次丢旗只刷新一次
func (s *FlagCounterSystem) ScheduleRefresh() {
	sched := s.world.Scheduler
	if sched.Pending(counterRefreshKey) {
		return
	}
	sched.Schedule(counterRefreshKey, s.world.Rules.Timing.CounterRefresh, s.Refresh)
}

// Count 返回队伍基地当前显示的计数
func (s *FlagCounterSystem) Count(team types.Team) int {
	id, ok := s.world.Base(team)
	if !ok {
		return 0
	}
	base, ok := ecs.GetComponent[*components.BaseComponent](s.world.EntityManager, id)
	if !ok {
		return 0
	}
	return base.FlagCount
}
