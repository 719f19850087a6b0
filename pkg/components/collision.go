package components

import "github.com/decker502/flagfield/pkg/utils"

// CollisionComponent 定义实体的碰撞盒尺寸
// 碰撞盒左上角与 PositionComponent 对齐，用于重叠检测和点击命中
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Box 返回实体在场地中的碰撞矩形
func Box(pos *PositionComponent, col *CollisionComponent) utils.Rect {
	return utils.NewRect(pos.X, pos.Y, col.Width, col.Height)
}
