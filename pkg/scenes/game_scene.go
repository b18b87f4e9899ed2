package scenes

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/game"
	"github.com/gonewx/bladefury/pkg/input"
	"github.com/gonewx/bladefury/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// bannerFadeMs 状态提示淡入时长
const bannerFadeMs = 400

// GameScene 游戏场景
//
// 职责：
//   - 每个 tick 推进一次帧时钟，把按键转换为 game.InputState 交给模拟核心
//   - 确认键驱动关卡切换和重新开始
//   - 暂停时冻结时钟，显示暂停面板
//   - 根据快照绘制竞技场、实体、HUD 和状态提示
type GameScene struct {
	sceneManager *SceneManager
	game         *game.Game
	clock        *game.TickClock
	keys         input.KeyBindings
	face         text.Face

	paused  bool
	pauseUI *ebitenui.UI
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - sm: 场景管理器，暂停面板的 Main Menu 按钮用它返回标题菜单
//   - g: 已创建好的模拟核心（新的一局）
//   - keys: 按键绑定
func NewGameScene(sm *SceneManager, g *game.Game, keys input.KeyBindings) *GameScene {
	s := &GameScene{
		sceneManager: sm,
		game:         g,
		clock:        game.NewTickClock(config.TicksPerSecond),
		keys:         keys,
		face:         newFace(),
	}
	s.pauseUI = newPauseUI(&s.face, s.resume, func() {
		log.Printf("[GameScene] 返回标题菜单")
		sm.Show(SceneMainMenu)
	})
	return s
}

// Update 推进一帧
// 每个 tick 只调用一次 Game.Update，位移和子弹速度都以帧为单位
func (s *GameScene) Update(deltaTime float64) {
	if s.keys.PauseJustPressed() {
		if s.paused {
			s.resume()
		} else {
			s.pause()
		}
		return
	}

	if s.paused {
		s.pauseUI.Update()
		return
	}

	now := s.clock.Advance()
	if s.keys.ConfirmJustPressed() {
		s.game.Confirm(now)
	}
	s.game.Update(now, s.keys.PollHeld())
}

func (s *GameScene) pause() {
	s.paused = true
	log.Printf("[GameScene] 暂停")
}

func (s *GameScene) resume() {
	s.paused = false
	log.Printf("[GameScene] 继续")
}

// SetTuning 转发热重载的配置，新数值在下一次关卡切换时生效
func (s *GameScene) SetTuning(t *config.Tuning) error {
	return s.game.SetTuning(t)
}

// Draw 绘制当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()

	screen.Fill(arenaColor)
	drawDefenses(screen, snap.Defenses)
	drawPlayer(screen, snap.Player)
	drawProjectiles(screen, snap.Projectiles)

	drawText(screen, snap.StatusLine(), s.face, 8, 6, textColor)
	if lines := snap.Banner(); len(lines) > 0 {
		fade := utils.EaseOutCubic(utils.Progress(s.clock.Now()-snap.TransitionTime, bannerFadeMs))
		drawOverlay(screen, lines, s.face, fade)
	}

	if s.paused {
		s.pauseUI.Draw(screen)
	}
}
