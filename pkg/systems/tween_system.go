package systems

import (
	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/utils"
)

// TweenSystem 推进位移缓动动画
// 动画结束后位置精确落在终点，组件被移除
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建缓动系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有缓动
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.MoveTweenComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		tween, ok := ecs.GetComponent[*components.MoveTweenComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		tween.Elapsed += deltaTime
		p := tween.Progress()

		easing := tween.Easing
		if easing == nil {
			easing = utils.EaseLinear
		}
		t := easing(p)
		pos.X = utils.Lerp(tween.StartX, tween.TargetX, t)
		pos.Y = utils.Lerp(tween.StartY, tween.TargetY, t)

		if p >= 1 {
			pos.X, pos.Y = tween.TargetX, tween.TargetY
			ecs.RemoveComponent[*components.MoveTweenComponent](s.entityManager, id)
		}
	}
}

// StartTween 为实体添加从当前位置到目标位置的缓动，替换已有缓动
func StartTween(em *ecs.EntityManager, id ecs.EntityID, targetX, targetY, duration float64, easing utils.EasingFunc) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	em.AddComponent(id, &components.MoveTweenComponent{
		StartX:   pos.X,
		StartY:   pos.Y,
		TargetX:  targetX,
		TargetY:  targetY,
		Duration: duration,
		Easing:   easing,
	})
}
