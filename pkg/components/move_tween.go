package components

import "github.com/decker502/flagfield/pkg/utils"

// MoveTweenComponent 存储位移缓动动画的状态
//
// 工作流程：
//  1. InteractionSystem 在回城的每个阶段添加此组件，记录起点和终点
//  2. TweenSystem 每帧推进 Elapsed，并按缓动曲线写回 PositionComponent
//  3. Elapsed 达到 Duration 后位置精确落在终点，组件被移除
type MoveTweenComponent struct {
	StartX, StartY   float64
	TargetX, TargetY float64

	// Duration 动画总时长（秒）
	Duration float64
	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Easing 缓动曲线，为 nil 时使用线性
	Easing utils.EasingFunc
}

// Progress 返回 [0, 1] 范围内的原始进度
func (m *MoveTweenComponent) Progress() float64 {
	if m.Duration <= 0 {
		return 1
	}
	p := m.Elapsed / m.Duration
	if p > 1 {
		return 1
	}
	return p
}
