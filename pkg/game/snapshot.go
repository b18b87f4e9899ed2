package game

import (
	"github.com/gonewx/bladefury/pkg/ecs"
	"github.com/gonewx/bladefury/pkg/entities"
	"github.com/gonewx/bladefury/pkg/types"
)

// EntityView 实体的只读快照
type EntityView struct {
	X, Y      float64
	Size      float64
	Health    int
	MaxHealth int
	Destroyed bool
}

// PlayerView 玩家的只读快照
type PlayerView struct {
	EntityView
	AttackRange float64
	AttackReady bool // 攻击冷却是否已结束
}

// DefenseView 防御塔的只读快照
type DefenseView struct {
	EntityView
	Kind        types.DefenseKind
	AttackRange float64
}

// ProjectileView 子弹的只读快照
type ProjectileView struct {
	ID   ecs.EntityID
	X, Y float64
	Size float64
}

// Snapshot 一帧的完整只读状态，供渲染层使用
// 所有字段都是值拷贝，渲染层修改它不会影响模拟
type Snapshot struct {
	State          State
	Level          int
	FinalLevel     int
	Time           int64
	TransitionTime int64
	ArenaWidth     float64
	ArenaHeight    float64

	Player      PlayerView
	Defenses    []DefenseView
	Projectiles []ProjectileView
	Stats       Stats
}

// Snapshot 生成当前状态的只读快照
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:          g.state,
		Level:          g.level.Number,
		FinalLevel:     g.tuning.Levels.Final,
		Time:           g.now,
		TransitionTime: g.transitionTime,
		ArenaWidth:     g.tuning.Arena.Width,
		ArenaHeight:    g.tuning.Arena.Height,
		Player: PlayerView{
			EntityView:  entityView(&g.player.Entity),
			AttackRange: g.player.AttackRange,
			AttackReady: g.player.CanAttack(g.now),
		},
		Defenses:    make([]DefenseView, 0, len(g.level.Defenses)),
		Projectiles: make([]ProjectileView, 0, g.projectiles.Len()),
		Stats:       g.stats,
	}

	for _, d := range g.level.Defenses {
		s.Defenses = append(s.Defenses, DefenseView{
			EntityView:  entityView(&d.Entity),
			Kind:        d.Kind,
			AttackRange: d.AttackRange,
		})
	}

	g.projectiles.Each(func(id ecs.EntityID, p *entities.Projectile) {
		s.Projectiles = append(s.Projectiles, ProjectileView{ID: id, X: p.X, Y: p.Y, Size: p.Size})
	})

	return s
}

func entityView(e *entities.Entity) EntityView {
	return EntityView{
		X:         e.X,
		Y:         e.Y,
		Size:      e.Size,
		Health:    e.Health,
		MaxHealth: e.MaxHealth,
		Destroyed: e.IsDestroyed(),
	}
}
