// Package entities 定义竞技场中的模拟实体（玩家、防御塔、子弹）及其工厂函数
//
// 所有实体都是纯数据 + 行为的结构体，不依赖任何渲染库；
// 渲染层只通过 game.Snapshot 读取它们的状态。
package entities

import "github.com/gonewx/bladefury/pkg/utils"

// Entity 玩家和防御塔共享的基础数据
// 位置为碰撞盒左上角，碰撞盒边长固定为 Size
type Entity struct {
	X, Y      float64 // 左上角坐标（像素）
	Size      float64 // 碰撞盒边长（像素）
	Health    int     // 当前生命值，始终在 [0, MaxHealth] 区间
	MaxHealth int     // 最大生命值
}

// NewEntity 创建满血实体
func NewEntity(x, y, size float64, maxHealth int) Entity {
	return Entity{
		X:         x,
		Y:         y,
		Size:      size,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// BoundingBox 返回由位置和边长推导出的碰撞盒
func (e *Entity) BoundingBox() utils.Rect {
	return utils.Rect{X: e.X, Y: e.Y, W: e.Size, H: e.Size}
}

// Center 返回碰撞盒中心点
func (e *Entity) Center() (float64, float64) {
	return e.X + e.Size/2, e.Y + e.Size/2
}

// IsDestroyed 生命值归零即视为被摧毁
// 被摧毁的实体仍保留在容器中，直到容器整体被替换
func (e *Entity) IsDestroyed() bool {
	return e.Health <= 0
}

// TakeDamage 扣除生命值，最低为 0
// 返回本次是否导致实体被摧毁
func (e *Entity) TakeDamage(amount int) bool {
	if amount <= 0 || e.IsDestroyed() {
		return false
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	return e.IsDestroyed()
}

// Heal 恢复生命值，不超过上限
func (e *Entity) Heal(amount int) {
	if amount <= 0 {
		return
	}
	e.Health += amount
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
}

// HealthRatio 返回生命值百分比 [0, 1]，供血条渲染使用
func (e *Entity) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// DistanceTo 计算与另一实体的欧几里得距离
// 两个实体边长相同时，左上角距离等于中心距离
func (e *Entity) DistanceTo(other *Entity) float64 {
	return utils.Distance(e.X, e.Y, other.X, other.Y)
}
