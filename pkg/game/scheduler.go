package game

import (
	"slices"

	"github.com/decker502/flagfield/pkg/ecs"
)

// TaskKind 延时任务类型
type TaskKind int

const (
	// TaskScoring 跑者在本方基地内的得分提交
	TaskScoring TaskKind = iota
	// TaskTagIndicator 清除"被抓"标记
	TaskTagIndicator
	// TaskReturnStage 回城动画的阶段切换
	TaskReturnStage
	// TaskCounterRefresh 刷新基地旗帜计数
	TaskCounterRefresh
	// TaskFlagAudit 周期性旗帜总数检查
	TaskFlagAudit
)

// String 返回任务类型名，用于日志
func (k TaskKind) String() string {
	switch k {
	case TaskScoring:
		return "scoring"
	case TaskTagIndicator:
		return "tag-indicator"
	case TaskReturnStage:
		return "return-stage"
	case TaskCounterRefresh:
		return "counter-refresh"
	case TaskFlagAudit:
		return "flag-audit"
	default:
		return "unknown"
	}
}

// TaskKey 延时任务的键
// 同一实体同一类型的任务最多存在一个，重复调度会替换旧任务
// 与具体实体无关的任务使用 ecs.InvalidEntity
type TaskKey struct {
	Entity ecs.EntityID
	Kind   TaskKind
}

// dueEpsilon 浮点累加误差容忍度（秒）
// 18 帧 × 1/60 秒累加后可能略小于 0.3
const dueEpsilon = 1e-9

type scheduledTask struct {
	key TaskKey
	due float64
	seq uint64
	fn  func()
}

// Scheduler 基于游戏时间的一次性延时任务调度器
//
// 时间只在 Update(dt) 中推进，单线程使用，不加锁。
// 任务回调在 Update 内同步执行，回调中可以继续调度或取消任务。
// 回调执行时实体状态可能已经变化，回调必须自行重新校验。
type Scheduler struct {
	now   float64
	seq   uint64
	tasks map[TaskKey]*scheduledTask
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make(map[TaskKey]*scheduledTask),
	}
}

// Now 返回调度器当前的游戏时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule 在 delay 秒后执行 fn
// 同键的未触发任务会被替换
func (s *Scheduler) Schedule(key TaskKey, delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.tasks[key] = &scheduledTask{
		key: key,
		due: s.now + delay,
		seq: s.seq,
		fn:  fn,
	}
}

// Cancel 取消任务，返回任务是否存在
func (s *Scheduler) Cancel(key TaskKey) bool {
	if _, ok := s.tasks[key]; !ok {
		return false
	}
	delete(s.tasks, key)
	return true
}

// CancelEntity 取消某个实体的全部任务
func (s *Scheduler) CancelEntity(id ecs.EntityID) {
	for key := range s.tasks {
		if key.Entity == id {
			delete(s.tasks, key)
		}
	}
}

// Pending 判断任务是否尚未触发
func (s *Scheduler) Pending(key TaskKey) bool {
	_, ok := s.tasks[key]
	return ok
}

// PendingCount 返回未触发任务数
func (s *Scheduler) PendingCount() int {
	return len(s.tasks)
}

// Update 推进游戏时间并按到期顺序执行任务
//
// 参数：
//   - deltaTime: 推进的时间（秒）
func (s *Scheduler) Update(deltaTime float64) {
	if deltaTime > 0 {
		s.now += deltaTime
	}

	for {
		due := s.collectDue()
		if len(due) == 0 {
			return
		}
		for _, task := range due {
			// 前一个回调可能已经取消或替换了该任务
			current, ok := s.tasks[task.key]
			if !ok || current != task {
				continue
			}
			delete(s.tasks, task.key)
			task.fn()
		}
	}
}

// collectDue 收集已到期任务，按 (到期时间, 调度顺序) 排序
func (s *Scheduler) collectDue() []*scheduledTask {
	var due []*scheduledTask
	for _, task := range s.tasks {
		if task.due <= s.now+dueEpsilon {
			due = append(due, task)
		}
	}
	slices.SortFunc(due, func(a, b *scheduledTask) int {
		switch {
		case a.due < b.due:
			return -1
		case a.due > b.due:
			return 1
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})
	return due
}
