package components

import (
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/repeale/fp-go/option"
)

// PlayerComponent 玩家数据
// 队伍和角色在创建后不再改变
type PlayerComponent struct {
	// Name 稳定名称，如 "red-R"，用于日志
	Name string
	// Team 所属队伍
	Team types.Team
	// Role 角色
	Role types.Role

	// CarryingFlag 正在携带的旗帜（仅跑者使用）
	CarryingFlag opt.Option[ecs.EntityID]

	// IsScoring 是否处于得分等待窗口
	IsScoring bool
	// ScoringFlag 得分任务启动时携带的旗帜
	// 任务触发时与 CarryingFlag 比较，不一致则放弃提交
	ScoringFlag opt.Option[ecs.EntityID]
}

// IsCarrying 是否正在携带旗帜
func (p *PlayerComponent) IsCarrying() bool {
	return opt.IsSome(p.CarryingFlag)
}
