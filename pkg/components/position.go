package components

// PositionComponent 存储实体左上角在场地中的坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}
