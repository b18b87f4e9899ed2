package entities

import (
	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/utils"
)

// Player 玩家角色
// 每局游戏只有一个实例，由 Game 独占持有
type Player struct {
	Entity

	Speed          float64 // 每帧移动距离
	AttackRange    float64 // 攻击范围
	AttackDamage   int     // 单次攻击伤害
	AttackCooldown int64   // 攻击冷却（毫秒）
	LastAttackTime int64   // 上次成功攻击的时间戳（毫秒）

	maxX, maxY float64 // 左上角坐标上限
}

// NewPlayer 创建玩家实体
//
// 参数:
//   - t: 数值配置
//   - x, y: 出生点左上角坐标
//
// 返回:
//   - *Player: 满血玩家，攻击冷却已就绪
func NewPlayer(t *config.Tuning, x, y float64) *Player {
	p := &Player{
		Entity:         NewEntity(x, y, t.Arena.TileSize, t.Player.MaxHealth),
		Speed:          t.Player.Speed,
		AttackRange:    t.Player.AttackRange,
		AttackDamage:   t.Player.AttackDamage,
		AttackCooldown: t.Player.AttackCooldownMs,
		LastAttackTime: -t.Player.AttackCooldownMs,
		maxX:           t.MaxX(),
		maxY:           t.MaxY(),
	}
	p.clamp()
	return p
}

// Move 按增量移动，然后把位置限制在竞技场内
// 碰撞盒始终完整地位于 [0, W-Size] × [0, H-Size]
func (p *Player) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
	p.clamp()
}

// ResetPosition 把玩家放回指定位置（关卡切换时使用）
func (p *Player) ResetPosition(x, y float64) {
	p.X = x
	p.Y = y
	p.clamp()
}

func (p *Player) clamp() {
	p.X = utils.Clamp(p.X, 0, p.maxX)
	p.Y = utils.Clamp(p.Y, 0, p.maxY)
}

// CanAttack 检查攻击冷却是否已结束
func (p *Player) CanAttack(now int64) bool {
	return now-p.LastAttackTime >= p.AttackCooldown
}

// Attack 对最近的有效目标发起一次近战攻击
// 冷却未结束或范围内没有目标时返回 false，且不更新冷却
func (p *Player) Attack(now int64, defenses []*Defense) bool {
	return p.Strike(now, defenses) != nil
}

// Strike 与 Attack 相同，但返回被击中的防御塔（没有命中时返回 nil）
//
// 目标选择规则：
//   - 跳过已被摧毁的防御塔
//   - 只考虑距离 ≤ AttackRange 的防御塔
//   - 选择距离最近的一个；距离相同时先遍历到的优先
func (p *Player) Strike(now int64, defenses []*Defense) *Defense {
	if !p.CanAttack(now) {
		return nil
	}

	var target *Defense
	best := 0.0
	for _, d := range defenses {
		if d == nil || d.IsDestroyed() {
			continue
		}
		dist := p.DistanceTo(&d.Entity)
		if dist > p.AttackRange {
			continue
		}
		if target == nil || dist < best {
			target = d
			best = dist
		}
	}

	if target == nil {
		return nil
	}

	target.TakeDamage(p.AttackDamage)
	p.LastAttackTime = now
	return target
}
