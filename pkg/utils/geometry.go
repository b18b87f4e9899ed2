// Package utils 提供通用工具函数
// 纯计算，不依赖任何图形或输入库
package utils

import "math"

// Rect 轴对齐边界框（AABB），X/Y 为左上角坐标
type Rect struct {
	X, Y float64
	W, H float64
}

// Right 返回右边界 X 坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回下边界 Y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects 检查两个矩形是否重叠
// 仅边界接触不算碰撞
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Distance 计算两点之间的欧几里得距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize 返回 (dx, dy) 方向上的单位向量
// 零向量返回 (0, 0, false)
func Normalize(dx, dy float64) (float64, float64, bool) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, false
	}
	return dx / length, dy / length, true
}

// Clamp 将 v 限制在 [lo, hi] 区间内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
