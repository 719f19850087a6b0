package components

// ClickableComponent 标记实体可以接收指针事件
// IsEnabled 为 false 时指针"穿透"该实体（携带中的旗帜、回城中的玩家）
type ClickableComponent struct {
	IsEnabled bool // 是否接收指针事件
	Draggable bool // 命中后是否开始拖拽；不可拖拽的实体只会挡住下方实体
}
