package config

// 布局配置常量
// 本文件定义了场地、窗口和绘制层级等与规则无关的固定参数。
// 规则相关的可调参数（尺寸、计时、基地百分比）见 rules_config.go。

// Window Configuration (窗口配置)
const (
	// DefaultWindowWidth 默认窗口宽度（像素）
	DefaultWindowWidth = 1024

	// DefaultWindowHeight 默认窗口高度（像素）
	DefaultWindowHeight = 640

	// MinFieldWidth 场地最小宽度
	// 窗口被拖得更小时按此尺寸布局，避免基地矩形退化
	MinFieldWidth = 320

	// MinFieldHeight 场地最小高度
	MinFieldHeight = 240

	// WindowTitle 窗口标题
	WindowTitle = "Flag Field"
)

// Tick Configuration (帧配置)
const (
	// TickDeltaTime 每个 Update 推进的游戏时间（秒）
	// Ebitengine 默认 60 TPS
	TickDeltaTime = 1.0 / 60.0
)

// Layout Configuration (场地布局细节)
const (
	// HomeFlagInsetX 本方旗帜相对基地左边的内缩（像素）
	HomeFlagInsetX = 20.0

	// HomeFlagInsetY 本方旗帜相对基地上边的内缩（像素）
	HomeFlagInsetY = 20.0

	// HomeFlagSpacing 相邻本方旗帜之间的间隔（像素）
	HomeFlagSpacing = 10.0

	// TaggerBaseGap 追捕者初始位置与基地边缘的间隔（像素）
	TaggerBaseGap = 10.0

	// ReturnOffscreenMargin 回城动画中离开/进入屏幕时超出场地边缘的距离（像素）
	ReturnOffscreenMargin = 100.0

	// CenterAreaWidthRatio 中央空地标识带的宽度比例
	CenterAreaWidthRatio = 0.4

	// CenterAreaHeightRatio 中央空地标识带的高度比例
	CenterAreaHeightRatio = 0.12

	// CenterAreaLabel 中央空地标识文字
	CenterAreaLabel = "FREE SPACE AREA"
)

// Render Configuration (绘制配置)
const (
	// BaseFillAlpha 基地填充色透明度
	BaseFillAlpha = 0x55

	// ReturningAlpha 回城中玩家的透明度（0-1）
	ReturningAlpha = 0.5

	// TaggedRingWidth 被抓标记圆环的线宽
	TaggedRingWidth = 4.0
)
