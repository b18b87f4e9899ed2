package game

import (
	"log"

	"github.com/gonewx/bladefury/pkg/ecs"
	"github.com/gonewx/bladefury/pkg/entities"
	"github.com/gonewx/bladefury/pkg/event"
)

// Update 推进一帧模拟，只在 playing 状态下生效
//
// 执行顺序：
//  1. 根据输入移动玩家（8 方向）
//  2. 按住攻击键时玩家攻击最近的防御塔
//  3. 每座未被摧毁的防御塔判断是否开火，开火则向玩家当前位置发射子弹
//  4. 更新所有子弹，标记命中玩家或飞出边界的子弹，扫描结束后统一移除
//  5. 检查终止条件：玩家死亡 → game_over，否则关卡完成 → level_complete
//
// 参数:
//   - now: 当前时间戳（毫秒），必须单调递增
//   - in: 本帧输入
func (g *Game) Update(now int64, in InputState) {
	if g.state != StatePlaying {
		return
	}
	g.now = now

	g.movePlayer(in)
	if in.Attack {
		g.playerAttack(now)
	}
	g.defensesFire(now)
	g.updateProjectiles()
	g.checkTransitions(now)
}

func (g *Game) movePlayer(in InputState) {
	dx, dy := in.MovementDelta(g.player.Speed)
	if dx == 0 && dy == 0 {
		return
	}
	g.player.Move(dx, dy)
}

func (g *Game) playerAttack(now int64) {
	target := g.player.Strike(now, g.level.Defenses)
	if target == nil {
		return
	}

	g.stats.AttacksLanded++
	cx, cy := target.Center()
	g.emit(event.Event{Type: event.PlayerAttacked, Amount: g.player.AttackDamage, X: cx, Y: cy})

	if target.IsDestroyed() {
		g.stats.DefensesDestroyed++
		log.Printf("[Game] %s 被摧毁，剩余 %d 座", target.Kind, g.level.Remaining())
		g.emit(event.Event{Type: event.DefenseDestroyed, X: cx, Y: cy})
	}
}

func (g *Game) defensesFire(now int64) {
	targetX, targetY := g.player.Center()
	for _, d := range g.level.Defenses {
		if d.IsDestroyed() {
			continue
		}
		if !d.ShouldAttack(now, g.player) {
			continue
		}

		x, y := d.Center()
		p := entities.NewProjectile(x, y, targetX, targetY,
			g.tuning.Projectile.Speed, d.Damage, g.tuning.Projectile.Size)
		g.projectiles.Create(p)
		g.stats.ProjectilesFired++
		g.emit(event.Event{Type: event.ProjectileFired, X: x, Y: y})
	}
}

// updateProjectiles 移动子弹并处理碰撞
// 扫描过程中只做标记，同一子弹即使同时命中且越界也只移除一次、只造成一次伤害
func (g *Game) updateProjectiles() {
	width, height := g.tuning.Arena.Width, g.tuning.Arena.Height

	g.projectiles.Each(func(id ecs.EntityID, p *entities.Projectile) {
		p.Update()

		if p.CollidesWith(g.player) && g.projectiles.DestroyEntity(id) {
			// 同一帧内玩家已死亡时，后续命中只移除子弹
			before := g.player.Health
			g.player.TakeDamage(p.Damage)
			if lost := before - g.player.Health; lost > 0 {
				g.stats.DamageTaken += lost
				g.emit(event.Event{Type: event.PlayerHit, Amount: lost, X: p.X, Y: p.Y})
			}
		}
		if p.IsOutOfBounds(width, height) {
			g.projectiles.DestroyEntity(id)
		}
	})

	g.projectiles.RemoveMarkedEntities()
}

func (g *Game) checkTransitions(now int64) {
	if g.player.IsDestroyed() {
		g.setState(StateGameOver, now)
		g.emit(event.Event{Type: event.GameOver})
		return
	}
	if g.level.IsCompleted() {
		g.setState(StateLevelComplete, now)
		g.emit(event.Event{Type: event.LevelComplete})
	}
}
