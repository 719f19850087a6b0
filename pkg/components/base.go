package components

import (
	"github.com/decker502/flagfield/pkg/types"
	"github.com/decker502/flagfield/pkg/utils"
)

// BaseComponent 基地数据
// Rect 由 LayoutSystem 根据当前场地尺寸重新计算，不做持久保存
type BaseComponent struct {
	Team types.Team
	Rect utils.Rect
	// FlagCount 基地计数牌显示的数字
	FlagCount int
}
