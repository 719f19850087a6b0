package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
)

// ErrFlagCountMismatch 场上旗帜实体数与规则不一致
var ErrFlagCountMismatch = errors.New("flag count mismatch")

var flagAuditKey = game.TaskKey{Entity: ecs.InvalidEntity, Kind: game.TaskFlagAudit}

// FlagAuditSystem 周期性检查旗帜总数
// 只记录错误，不做恢复
type FlagAuditSystem struct {
	world *game.World
}

// NewFlagAuditSystem 创建旗帜检查系统
func NewFlagAuditSystem(world *game.World) *FlagAuditSystem {
	return &FlagAuditSystem{world: world}
}

// Start 开始周期检查，重复调用只保留一个周期
func (s *FlagAuditSystem) Start() {
	s.world.Scheduler.Schedule(flagAuditKey, s.world.Rules.Timing.AuditInterval, s.run)
}

// Stop 停止周期检查
func (s *FlagAuditSystem) Stop() {
	s.world.Scheduler.Cancel(flagAuditKey)
}

func (s *FlagAuditSystem) run() {
	err := s.Check()
	s.world.LastAuditError = err
	if err != nil {
		log.Printf("[FlagAudit] CRITICAL ERROR: %v", err)
	}
	s.Start()
}

// Check 比较旗帜实体数与 队伍数 × 每队旗帜数
func (s *FlagAuditSystem) Check() error {
	expected := s.world.Rules.TotalFlags()
	found := s.world.FlagEntityCount()
	if found != expected {
		return fmt.Errorf("%w: expected %d, found %d", ErrFlagCountMismatch, expected, found)
	}
	return nil
}
