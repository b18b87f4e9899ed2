package entities

import "github.com/gonewx/bladefury/pkg/utils"

// Projectile 防御塔发射的子弹
// 方向在创建时确定，之后不再追踪目标，玩家可以通过移动躲避
type Projectile struct {
	X, Y   float64 // 中心坐标（像素）
	VX, VY float64 // 每帧位移（像素/帧）
	Damage int     // 命中伤害
	Size   float64 // 碰撞盒边长（像素）
}

// NewProjectile 创建子弹实体
//
// 参数:
//   - x, y: 发射点（子弹中心）
//   - targetX, targetY: 发射瞬间的目标位置
//   - speed: 每帧移动距离
//   - damage: 命中伤害
//   - size: 碰撞盒边长
//
// 发射点与目标重合时没有方向可言，子弹改为竖直向下飞行
func NewProjectile(x, y, targetX, targetY, speed float64, damage int, size float64) *Projectile {
	dirX, dirY, ok := utils.Normalize(targetX-x, targetY-y)
	if !ok {
		dirX, dirY = 0, 1
	}
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     dirX * speed,
		VY:     dirY * speed,
		Damage: damage,
		Size:   size,
	}
}

// Update 前进一帧
// 每帧固定步长，不按时间差缩放（60 帧/秒）
func (p *Projectile) Update() {
	p.X += p.VX
	p.Y += p.VY
}

// BoundingBox 返回以子弹中心为中心的碰撞盒
func (p *Projectile) BoundingBox() utils.Rect {
	return utils.Rect{X: p.X - p.Size/2, Y: p.Y - p.Size/2, W: p.Size, H: p.Size}
}

// IsOutOfBounds 子弹中心离开 [0,width] × [0,height] 即可移除
func (p *Projectile) IsOutOfBounds(width, height float64) bool {
	return p.X < 0 || p.X > width || p.Y < 0 || p.Y > height
}

// CollidesWith 检查子弹是否击中玩家
func (p *Projectile) CollidesWith(player *Player) bool {
	return p.BoundingBox().Intersects(player.BoundingBox())
}
