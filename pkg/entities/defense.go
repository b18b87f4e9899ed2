package entities

import (
	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/types"
)

// Defense 固定位置的敌方防御塔
// 由生成它的 Level 独占持有，关卡切换时整体丢弃
type Defense struct {
	Entity

	Kind           types.DefenseKind // 防御塔类型
	AttackRange    float64           // 射程
	Damage         int               // 子弹伤害
	FireRate       int64             // 开火间隔（毫秒）
	LastAttackTime int64             // 上次开火时间戳（毫秒）
}

// NewDefense 按属性模板创建防御塔
// 新建的防御塔开火冷却已就绪
func NewDefense(kind types.DefenseKind, x, y, size float64, stats config.DefenseStats) *Defense {
	return &Defense{
		Entity:         NewEntity(x, y, size, stats.Health),
		Kind:           kind,
		AttackRange:    stats.AttackRange,
		Damage:         stats.Damage,
		FireRate:       stats.FireRateMs,
		LastAttackTime: -stats.FireRateMs,
	}
}

// ShouldAttack 判断本帧是否向玩家开火
//
// 冷却未结束时立即返回 false；否则玩家在射程内时记录开火时间并返回 true。
// 注意：冷却在开火时就被记录，而伤害要等子弹飞行并命中后才结算。
func (d *Defense) ShouldAttack(now int64, player *Player) bool {
	if now-d.LastAttackTime < d.FireRate {
		return false
	}
	if d.DistanceTo(&player.Entity) > d.AttackRange {
		return false
	}
	d.LastAttackTime = now
	return true
}
