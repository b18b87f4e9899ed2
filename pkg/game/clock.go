package game

import "time"

// Clock 单调递增的时间源（毫秒）
// 所有冷却和开火间隔都与该时间比较
type Clock interface {
	Now() int64
}

// TickClock 按模拟帧计时的时钟
// 每调用一次 Advance 前进 1000/tps 毫秒，暂停时不调用即可冻结时间
type TickClock struct {
	tick int64
	tps  int64
}

// NewTickClock 创建帧时钟
func NewTickClock(tps int) *TickClock {
	if tps <= 0 {
		tps = 60
	}
	return &TickClock{tps: int64(tps)}
}

// Advance 前进一帧并返回新的时间戳
func (c *TickClock) Advance() int64 {
	c.tick++
	return c.Now()
}

// Now 返回当前时间戳（毫秒）
func (c *TickClock) Now() int64 {
	return c.tick * 1000 / c.tps
}

// Ticks 返回已经过的帧数
func (c *TickClock) Ticks() int64 {
	return c.tick
}

// WallClock 读取系统单调时钟
type WallClock struct {
	start time.Time
}

// NewWallClock 以当前时刻为零点创建时钟
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now 返回自创建以来经过的毫秒数
func (c *WallClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}
