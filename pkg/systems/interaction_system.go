package systems

import (
	"log"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/decker502/flagfield/pkg/utils"
	"github.com/repeale/fp-go/option"
)

// InteractionSystem 交互规则引擎
//
// 每次有效拖动后同步执行一次 Scan，按创建顺序检查每名玩家：
//   - 携旗跑者：进入本方基地开始得分计时，离开则取消
//   - 空手跑者：拾取第一面重叠的敌方静止旗帜
//   - 抓捕：守卫在本方基地内、追捕者在空地上抓到携旗跑者时使其丢旗
//
// 缺少实体或组件时静默跳过，不返回错误。
type InteractionSystem struct {
	world    *game.World
	counters *FlagCounterSystem
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(world *game.World, counters *FlagCounterSystem) *InteractionSystem {
	return &InteractionSystem{
		world:    world,
		counters: counters,
	}
}

// Scan 重新评估全部玩家之间、玩家与旗帜、玩家与基地的关系
func (s *InteractionSystem) Scan() {
	w := s.world
	w.ScanCount++

	for _, id := range w.Players() {
		player, ok := w.Player(id)
		if !ok || w.IsReturning(id) {
			continue
		}
		box, ok := w.Box(id)
		if !ok {
			continue
		}

		if player.Role == types.RoleRunner {
			if player.IsCarrying() {
				s.checkScoring(id, player, box)
			} else {
				s.tryPickup(id, player, box)
			}
		}

		s.checkTags(id, player, box)
	}
}

// checkScoring 携旗跑者中心进入本方基地时开始计时，离开时取消
func (s *InteractionSystem) checkScoring(id ecs.EntityID, player *components.PlayerComponent, box utils.Rect) {
	inHome := s.world.CenterInBase(box, player.Team)

	switch {
	case inHome && !player.IsScoring:
		player.IsScoring = true
		player.ScoringFlag = player.CarryingFlag
		s.world.Scheduler.Schedule(
			game.TaskKey{Entity: id, Kind: game.TaskScoring},
			s.world.Rules.Timing.ScoringDelay,
			func() { s.commitScore(id) },
		)
		log.Printf("[Interaction] %s 进入本方基地，开始得分计时", player.Name)

	case !inHome && player.IsScoring:
		s.cancelScoring(id, player)
		log.Printf("[Interaction] %s 离开本方基地，取消得分", player.Name)
	}
}

// commitScore 得分计时到期
// 跑者仍携带计时开始时的那面旗帜才提交，否则只清除得分状态
func (s *InteractionSystem) commitScore(id ecs.EntityID) {
	w := s.world
	player, ok := w.Player(id)
	if !ok {
		return
	}

	expected := player.ScoringFlag
	if !player.IsScoring || opt.IsNone(expected) || opt.IsNone(player.CarryingFlag) ||
		player.CarryingFlag.Value != expected.Value {
		player.IsScoring = false
		player.ScoringFlag = opt.None[ecs.EntityID]()
		return
	}

	flag, ok := w.Flag(expected.Value)
	if !ok {
		player.IsScoring = false
		player.ScoringFlag = opt.None[ecs.EntityID]()
		return
	}

	previous := flag.Team
	flag.Team = player.Team
	log.Printf("[Interaction] %s 得分: %s 从 %s 变为 %s", player.Name, flag.Name, previous, flag.Team)

	s.DropFlag(id)
}

// cancelScoring 取消得分计时并清除得分状态
func (s *InteractionSystem) cancelScoring(id ecs.EntityID, player *components.PlayerComponent) {
	s.world.Scheduler.Cancel(game.TaskKey{Entity: id, Kind: game.TaskScoring})
	player.IsScoring = false
	player.ScoringFlag = opt.None[ecs.EntityID]()
}

// tryPickup 拾取第一面与跑者重叠的敌方静止旗帜，每次扫描最多一面
func (s *InteractionSystem) tryPickup(id ecs.EntityID, player *components.PlayerComponent, box utils.Rect) {
	w := s.world
	for _, flagID := range w.Flags() {
		flag, ok := w.Flag(flagID)
		if !ok || flag.Team == player.Team || flag.IsCarried() {
			continue
		}
		flagBox, ok := w.Box(flagID)
		if !ok || !box.Overlaps(flagBox) {
			continue
		}

		player.CarryingFlag = opt.Some(flagID)
		flag.Carrier = opt.Some(id)
		w.SetInteractive(flagID, false)
		syncCarriedFlag(w, id)

		log.Printf("[Interaction] %s 拾取 %s", player.Name, flag.Name)
		return
	}
}

// checkTags 检查玩家与所有重叠的异队玩家之间的抓捕
func (s *InteractionSystem) checkTags(id ecs.EntityID, player *components.PlayerComponent, box utils.Rect) {
	w := s.world
	for _, otherID := range w.Players() {
		if otherID == id || w.IsReturning(otherID) {
			continue
		}
		other, ok := w.Player(otherID)
		if !ok || other.Team == player.Team {
			continue
		}
		otherBox, ok := w.Box(otherID)
		if !ok || !box.Overlaps(otherBox) {
			continue
		}

		runnerID, runner, taggerPlayer, ok := pairRunnerAndTagger(id, player, otherID, other)
		if !ok || !runner.IsCarrying() {
			continue
		}
		runnerBox, ok := w.Box(runnerID)
		if !ok {
			continue
		}

		switch taggerPlayer.Role {
		case types.RoleGuardian:
			if w.CenterInBase(runnerBox, taggerPlayer.Team) {
				log.Printf("[Interaction] 守卫 %s 在本方基地抓到 %s", taggerPlayer.Name, runner.Name)
				s.DropFlag(runnerID)
				s.ResetPlayerToBase(runnerID)
			}
		case types.RoleTagger:
			if !w.CenterInAnyBase(runnerBox) {
				log.Printf("[Interaction] 追捕者 %s 在空地抓到 %s", taggerPlayer.Name, runner.Name)
				s.DropFlag(runnerID)
				s.MarkTagged(runnerID)
			}
		}

		if w.IsReturning(id) {
			return
		}
	}
}

// pairRunnerAndTagger 从一对玩家中找出跑者和抓捕者
func pairRunnerAndTagger(
	aID ecs.EntityID, a *components.PlayerComponent,
	bID ecs.EntityID, b *components.PlayerComponent,
) (ecs.EntityID, *components.PlayerComponent, *components.PlayerComponent, bool) {
	switch {
	case a.Role == types.RoleRunner && b.Role.CanTag():
		return aID, a, b, true
	case b.Role == types.RoleRunner && a.Role.CanTag():
		return bID, b, a, true
	default:
		return 0, nil, nil, false
	}
}

// DropFlag 跑者在当前位置放下旗帜
// 取消得分计时，恢复旗帜的指针交互，并延迟刷新基地计数
// 跑者没有携带旗帜时返回 false
func (s *InteractionSystem) DropFlag(runnerID ecs.EntityID) bool {
	w := s.world
	player, ok := w.Player(runnerID)
	if !ok || !player.IsCarrying() {
		return false
	}

	flagID := player.CarryingFlag.Value
	s.cancelScoring(runnerID, player)
	player.CarryingFlag = opt.None[ecs.EntityID]()

	if flag, ok := w.Flag(flagID); ok {
		flag.Carrier = opt.None[ecs.EntityID]()
		w.SetInteractive(flagID, true)
		log.Printf("[Interaction] %s 放下 %s", player.Name, flag.Name)
	}

	if s.counters != nil {
		s.counters.ScheduleRefresh()
	}
	return true
}

// MarkTagged 显示"被抓"标记，到期自动清除
// 标记期间再次被抓会重新计时
func (s *InteractionSystem) MarkTagged(id ecs.EntityID) {
	w := s.world
	visual, ok := ecs.GetComponent[*components.VisualStateComponent](w.EntityManager, id)
	if !ok {
		return
	}
	visual.Tagged = true
	w.Scheduler.Schedule(
		game.TaskKey{Entity: id, Kind: game.TaskTagIndicator},
		w.Rules.Timing.TagIndicator,
		func() {
			if v, ok := ecs.GetComponent[*components.VisualStateComponent](w.EntityManager, id); ok {
				v.Tagged = false
			}
		},
	)
}

// ResetPlayerToBase 播放两段式回城动画
//
// 第一段：从当前位置水平移出场地（靠近哪侧就从哪侧离开）
// 第二段：从本方基地一侧的场外、基地中心高度进入，移动到基地中心
// 整个过程中玩家不接收指针事件，也不参与交互扫描
func (s *InteractionSystem) ResetPlayerToBase(id ecs.EntityID) {
	w := s.world
	visual, ok := ecs.GetComponent[*components.VisualStateComponent](w.EntityManager, id)
	if !ok {
		return
	}
	box, ok := w.Box(id)
	if !ok {
		return
	}

	visual.Returning = true
	w.SetInteractive(id, false)

	exitX := offscreenX(w, box.Left < w.FieldWidth/2)
	StartTween(w.EntityManager, id, exitX, box.Top, w.Rules.Timing.ReturnStage, utils.EaseInOutCubic)

	w.Scheduler.Schedule(
		game.TaskKey{Entity: id, Kind: game.TaskReturnStage},
		w.Rules.Timing.ReturnStage,
		func() { s.enterHomeBase(id) },
	)
	log.Printf("[Interaction] %s 开始回城", w.Name(id))
}

// enterHomeBase 回城第二段
func (s *InteractionSystem) enterHomeBase(id ecs.EntityID) {
	w := s.world
	player, ok := w.Player(id)
	if !ok {
		return
	}
	rect, ok := w.BaseRect(player.Team)
	box, boxOK := w.Box(id)
	if !ok || !boxOK {
		finishReturn(w, id)
		return
	}

	finalX := rect.Left + rect.Width/2 - box.Width/2
	finalY := rect.Top + rect.Height/2 - box.Height/2

	pos, _ := w.Position(id)
	pos.X = offscreenX(w, rect.Left < w.FieldWidth/2)
	pos.Y = finalY
	StartTween(w.EntityManager, id, finalX, finalY, w.Rules.Timing.ReturnStage, utils.EaseInOutCubic)

	w.Scheduler.Schedule(
		game.TaskKey{Entity: id, Kind: game.TaskReturnStage},
		w.Rules.Timing.ReturnStage,
		func() {
			if p, ok := w.Position(id); ok {
				p.X, p.Y = finalX, finalY
			}
			finishReturn(w, id)
			log.Printf("[Interaction] %s 回到本方基地", w.Name(id))
		},
	)
}

// offscreenX 返回场地左侧或右侧外的横坐标
func offscreenX(w *game.World, left bool) float64 {
	if left {
		return -config.ReturnOffscreenMargin
	}
	return w.FieldWidth + config.ReturnOffscreenMargin
}

// finishReturn 结束回城状态，恢复指针交互
func finishReturn(w *game.World, id ecs.EntityID) {
	w.Scheduler.Cancel(game.TaskKey{Entity: id, Kind: game.TaskReturnStage})
	ecs.RemoveComponent[*components.MoveTweenComponent](w.EntityManager, id)
	if visual, ok := ecs.GetComponent[*components.VisualStateComponent](w.EntityManager, id); ok {
		visual.Returning = false
	}
	w.SetInteractive(id, true)
}

// syncCarriedFlag 把携带的旗帜移到携带者左上角
func syncCarriedFlag(w *game.World, playerID ecs.EntityID) {
	player, ok := w.Player(playerID)
	if !ok || !player.IsCarrying() {
		return
	}
	playerPos, ok := w.Position(playerID)
	if !ok {
		return
	}
	if flagPos, ok := w.Position(player.CarryingFlag.Value); ok {
		flagPos.X, flagPos.Y = playerPos.X, playerPos.Y
	}
}
