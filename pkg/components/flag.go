package components

import (
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/types"
	"github.com/repeale/fp-go/option"
)

// FlagComponent 旗帜数据
//
// 旗帜要么有携带者（位置跟随携带者），要么静止在某处，二者互斥。
type FlagComponent struct {
	// Name 稳定名称，如 "flag-red-0"
	Name string
	// HomeTeam 初始所属队伍，决定重新布局时是否回到本方基地
	HomeTeam types.Team
	// Index 在本方基地中的序号
	Index int

	// Team 当前所属队伍，被夺取得分后改变
	Team types.Team
	// Carrier 当前携带者
	Carrier opt.Option[ecs.EntityID]
}

// IsCarried 是否正被携带
func (f *FlagComponent) IsCarried() bool {
	return opt.IsSome(f.Carrier)
}

// IsAtHome 是否仍属于初始队伍且未被携带
func (f *FlagComponent) IsAtHome() bool {
	return f.Team == f.HomeTeam && !f.IsCarried()
}
