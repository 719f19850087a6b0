package utils

// Rect 轴对齐矩形（左上角 + 宽高），坐标单位为场地像素
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect 根据左上角和尺寸创建矩形
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right 返回右边界
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom 返回下边界
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Center 返回中心点
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Overlaps 判断两个矩形是否重叠
// 边缘相接也算重叠
func (r Rect) Overlaps(other Rect) bool {
	return !(r.Right() < other.Left ||
		r.Left > other.Right() ||
		r.Bottom() < other.Top ||
		r.Top > other.Bottom())
}

// Contains 判断点是否落在矩形内，用于指针命中检测
// 左、上边界包含，右、下边界不包含
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// ContainsStrict 判断点是否严格位于矩形内部（落在边上不算）
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.Left && x < r.Right() && y > r.Top && y < r.Bottom()
}

// ContainsCenterOf 判断 other 的中心点是否严格位于 r 内部
// 用于"玩家是否在基地内"的判定，比整框包含手感更好
func (r Rect) ContainsCenterOf(other Rect) bool {
	cx, cy := other.Center()
	return r.ContainsStrict(cx, cy)
}

// Clamp 将值限制在 [min, max] 区间
// 当 max < min 时（容器比物体还小）返回 min
func Clamp(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// ClampBoxInto 将宽高为 w×h、左上角为 (x, y) 的盒子限制在容器矩形内
//
// 参数:
//   - x, y: 盒子左上角候选坐标
//   - w, h: 盒子尺寸
//   - container: 容器矩形
//
// 返回:
//   - 限制后的左上角坐标
func ClampBoxInto(x, y, w, h float64, container Rect) (float64, float64) {
	x = Clamp(x, container.Left, container.Right()-w)
	y = Clamp(y, container.Top, container.Bottom()-h)
	return x, y
}
