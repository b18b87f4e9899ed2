package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/ecs"
	"github.com/gonewx/bladefury/pkg/entities"
	"github.com/gonewx/bladefury/pkg/event"
)

// Options 创建 Game 所需的依赖
// 零值字段会使用默认值
type Options struct {
	Tuning     *config.Tuning    // 数值配置，默认 config.DefaultTuning()
	Rand       *rand.Rand        // 随机数源，默认以当前时间为种子
	Events     *event.Dispatcher // 事件分发器，默认新建一个
	StartLevel int               // 起始关卡（调试用），默认 1
}

// Game 游戏编排器和状态机
//
// 职责：
//   - 独占持有玩家、当前关卡和子弹集合
//   - 按固定顺序推进一帧模拟（见 Update）
//   - 处理状态切换：playing → level_complete → 下一关，playing → game_over，
//     最后一关完成 → victory，以及 game_over/victory 的重新开始
//
// 架构说明：
//   - 单线程使用，所有修改都发生在 Update/Confirm 内部
//   - 不依赖任何渲染库，表现层通过 Snapshot 只读访问状态
type Game struct {
	tuning        *config.Tuning
	pendingTuning *config.Tuning // 热重载后的新配置，在下一次关卡切换时生效
	rng           *rand.Rand
	events        *event.Dispatcher

	player      *entities.Player
	level       *Level
	projectiles *ecs.Store[*entities.Projectile]

	state          State
	transitionTime int64 // 最近一次状态切换的时间戳
	now            int64 // 最近一次 Update/Confirm 的时间戳
	startLevel     int
	stats          Stats
}

// NewGame 创建游戏并立即开始起始关卡
func NewGame(opts Options) *Game {
	if opts.Tuning == nil {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Events == nil {
		opts.Events = event.NewDispatcher()
	}
	if opts.StartLevel < 1 || opts.StartLevel > opts.Tuning.Levels.Final {
		opts.StartLevel = 1
	}

	g := &Game{
		tuning:      opts.Tuning,
		rng:         opts.Rand,
		events:      opts.Events,
		projectiles: ecs.NewStore[*entities.Projectile](),
		startLevel:  opts.StartLevel,
	}
	g.Reset(0)
	return g
}

// Reset 重新开始一局：新玩家、起始关卡、清空子弹和统计数据
func (g *Game) Reset(now int64) {
	g.applyPendingTuning()

	spawnX, spawnY := g.tuning.PlayerSpawn()
	g.player = entities.NewPlayer(g.tuning, spawnX, spawnY)
	g.level = NewLevel(g.startLevel, g.tuning, g.rng)
	g.projectiles.Clear()
	g.stats = Stats{}
	g.setState(StatePlaying, now)

	log.Printf("[Game] 新的一局开始，关卡 %d", g.level.Number)
	g.emit(event.Event{Type: event.LevelStarted})
}

// NextLevel 从 level_complete 进入下一关
//
// 超过最后一关时切换到 victory；否则生成新关卡，
// 玩家回血（不超过上限）并回到出生点，场上子弹清空。
// 其他状态下调用无效果。
func (g *Game) NextLevel(now int64) {
	if g.state != StateLevelComplete {
		return
	}

	next := g.level.Number + 1
	if next > g.tuning.Levels.Final {
		g.setState(StateVictory, now)
		log.Printf("[Game] 通过全部 %d 关，胜利", g.tuning.Levels.Final)
		g.emit(event.Event{Type: event.Victory})
		return
	}

	g.applyPendingTuning()
	g.level = NewLevel(next, g.tuning, g.rng)
	g.player.Heal(g.tuning.Player.LevelHealBonus)
	g.player.ResetPosition(g.tuning.PlayerSpawn())
	g.projectiles.Clear()
	g.setState(StatePlaying, now)

	log.Printf("[Game] 进入关卡 %d，玩家生命值 %d/%d", next, g.player.Health, g.player.MaxHealth)
	g.emit(event.Event{Type: event.LevelStarted})
}

// Confirm 处理“确认”操作
// level_complete 时进入下一关，game_over/victory 时重新开始，游戏中无效果
// 返回是否发生了状态切换
func (g *Game) Confirm(now int64) bool {
	g.now = now
	switch g.state {
	case StateLevelComplete:
		g.NextLevel(now)
		return true
	case StateGameOver, StateVictory:
		g.Reset(now)
		return true
	default:
		return false
	}
}

// SetTuning 设置新的数值配置（热重载）
// 新配置在下一次 Reset 或 NextLevel 时生效，不影响当前关卡中的实体
// 修改竞技场尺寸的配置会被拒绝
func (g *Game) SetTuning(t *config.Tuning) error {
	if t == nil {
		return nil
	}
	if err := g.tuning.CheckReload(t); err != nil {
		return err
	}
	g.pendingTuning = t
	log.Printf("[Game] 新配置将在下一次关卡切换时生效")
	return nil
}

func (g *Game) applyPendingTuning() {
	if g.pendingTuning == nil {
		return
	}
	g.tuning = g.pendingTuning
	g.pendingTuning = nil
	if g.startLevel > g.tuning.Levels.Final {
		g.startLevel = 1
	}
	log.Printf("[Game] 已应用新配置")
}

func (g *Game) setState(s State, now int64) {
	if g.state != s {
		log.Printf("[Game] 状态切换: %s → %s", g.state, s)
	}
	g.state = s
	g.transitionTime = now
	g.now = now
}

func (g *Game) emit(e event.Event) {
	if e.Time == 0 {
		e.Time = g.now
	}
	if g.level != nil {
		e.Level = g.level.Number
	}
	g.events.Dispatch(e)
}

// State 返回当前状态
func (g *Game) State() State {
	return g.state
}

// TransitionTime 返回最近一次状态切换的时间戳
func (g *Game) TransitionTime() int64 {
	return g.transitionTime
}

// Player 返回玩家实体
func (g *Game) Player() *entities.Player {
	return g.player
}

// Level 返回当前关卡
func (g *Game) Level() *Level {
	return g.level
}

// Projectiles 返回场上的子弹（按发射顺序）
func (g *Game) Projectiles() []*entities.Projectile {
	return g.projectiles.Items()
}

// Stats 返回本局统计数据
func (g *Game) Stats() Stats {
	return g.stats
}

// Tuning 返回当前生效的数值配置
func (g *Game) Tuning() *config.Tuning {
	return g.tuning
}

// Events 返回事件分发器，供表现层订阅
func (g *Game) Events() *event.Dispatcher {
	return g.events
}
