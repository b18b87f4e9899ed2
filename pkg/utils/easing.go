package utils

import "math"

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 用于状态提示的淡入等界面过渡

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 计算过渡进度，截断到 [0, 1]
//
// 参数:
//   - elapsedMs: 已经过的毫秒数
//   - durationMs: 过渡总时长，<= 0 时直接返回 1
func Progress(elapsedMs, durationMs int64) float64 {
	if durationMs <= 0 {
		return 1
	}
	return Clamp(float64(elapsedMs)/float64(durationMs), 0, 1)
}
