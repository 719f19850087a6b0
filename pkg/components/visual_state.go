package components

// VisualStateComponent 玩家的瞬时视觉状态
//
// 使用场景：
//   - Tagged: 被追捕者在空地抓到后短暂显示的标记
//   - Returning: 被守卫抓到后回城动画进行中
type VisualStateComponent struct {
	Tagged    bool
	Returning bool
}
