// Package app 提供 ebiten 前端的应用包装器
//
// 负责加载配置、创建场景管理器、处理配置热重载，
// 并把 ebiten 的 Update/Draw/Layout 转发给当前场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/event"
	"github.com/gonewx/bladefury/pkg/game"
	"github.com/gonewx/bladefury/pkg/input"
	"github.com/gonewx/bladefury/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 调参文件路径，为空时使用嵌入的 data/tuning.yaml
	ConfigPath string
	// Watch 监听调参文件变化并热重载
	Watch bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// StartLevel 起始关卡（调试用），大于 0 时跳过标题菜单直接进入游戏
	StartLevel int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	keys         input.KeyBindings
	tuning       *config.Tuning
	rng          *rand.Rand
	watcher      *config.Watcher
	startLevel   int
	screenWidth  int
	screenHeight int
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultTuningPath
	}
	tuning, err := config.LoadTuning(path)
	if err != nil {
		return nil, fmt.Errorf("调参配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载调参配置: %s", path)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] 随机种子: %d", seed)

	a := &App{
		sceneManager: scenes.NewSceneManager(),
		keys:         input.DefaultKeyBindings(),
		tuning:       tuning,
		rng:          rand.New(rand.NewSource(seed)),
		startLevel:   cfg.StartLevel,
		screenWidth:  int(tuning.Arena.Width),
		screenHeight: int(tuning.Arena.Height),
		verbose:      cfg.Verbose,
	}
	a.sceneManager.SetSceneFactory(a.newScene)

	if cfg.Watch {
		w, err := config.NewWatcher(path)
		if err != nil {
			return nil, fmt.Errorf("无法监听调参文件 %s: %w", path, err)
		}
		a.watcher = w
		log.Printf("[Config] 热重载已启用: %s", path)
	}

	if cfg.StartLevel > 0 {
		log.Printf("[App] 跳过标题菜单，直接进入关卡 %d", cfg.StartLevel)
		a.sceneManager.Show(scenes.SceneGame)
	} else {
		a.sceneManager.Show(scenes.SceneMainMenu)
	}

	return a, nil
}

// newScene 场景工厂，每次进入游戏场景都开始新的一局
func (a *App) newScene(id scenes.SceneID) scenes.Scene {
	switch id {
	case scenes.SceneMainMenu:
		return scenes.NewMainMenuScene(a.sceneManager, a.keys)
	case scenes.SceneOptions:
		return scenes.NewOptionsScene(a.sceneManager, a.keys)
	case scenes.SceneGame:
		return scenes.NewGameScene(a.sceneManager, a.newGame(), a.keys)
	default:
		return nil
	}
}

func (a *App) newGame() *game.Game {
	events := event.NewDispatcher()
	events.SubscribeAll(event.ListenerFunc(logEvent))
	return game.NewGame(game.Options{
		Tuning:     a.tuning,
		Rand:       a.rng,
		Events:     events,
		StartLevel: a.startLevel,
	})
}

// logEvent 把游戏事件写入日志（仅 -verbose 时可见）
func logEvent(e event.Event) {
	if e.Type == event.ProjectileFired {
		return
	}
	log.Printf("[Event] %s level=%d t=%dms amount=%d", e.Type, e.Level, e.Time, e.Amount)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（固定每秒 60 次）
func (a *App) Update() error {
	a.pollConfigChanges()

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(1.0 / float64(config.TicksPerSecond))

	if a.sceneManager.QuitRequested() {
		log.Printf("[App] 退出")
		return ebiten.Termination
	}
	return nil
}

// pollConfigChanges 非阻塞地处理监听器发来的文件变化
func (a *App) pollConfigChanges() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			a.reloadTuning(path)
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Printf("[Config] 监听错误: %v", err)
		default:
			return
		}
	}
}

// reloadTuning 重新读取调参文件
// 新配置用于之后创建的对局，当前对局在下一次关卡切换时生效；
// 文件不合法或修改了竞技场尺寸时保留旧配置
func (a *App) reloadTuning(path string) {
	t, err := config.LoadTuningFile(path)
	if err == nil {
		err = a.tuning.CheckReload(t)
	}
	if err != nil {
		log.Printf("[Config] 热重载失败，继续使用旧配置: %v", err)
		return
	}
	a.tuning = t
	if gs, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene); ok {
		if err := gs.SetTuning(t); err != nil {
			log.Printf("[Config] 当前对局拒绝新配置: %v", err)
		}
	}
	log.Printf("[Config] 已重新加载 %s", path)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色填充两侧
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（竞技场尺寸，运行中不变）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// ScreenSize 返回逻辑屏幕尺寸，用于设置窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.screenWidth, a.screenHeight
}

// Close 停止配置监听
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}
