package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/game"
)

// DefaultTickInterval 终端前端的帧间隔（约 60 帧/秒）
const DefaultTickInterval = 16 * time.Millisecond

// Muter 可静音的音效输出
type Muter interface {
	SetMuted(muted bool)
}

// Options 终端前端配置
type Options struct {
	HoldWindow   time.Duration   // 按键按住窗口，默认 DefaultHoldWindow
	TickInterval time.Duration   // 帧间隔，默认 DefaultTickInterval
	Watcher      *config.Watcher // 调参文件监听器，可为 nil
	Sound        Muter           // M 键切换静音，可为 nil
}

// Runner 终端前端主循环
//
// 输入事件由单独的 goroutine 轮询后通过通道交给主循环，
// 模拟核心只在主循环中被访问。
type Runner struct {
	screen   tcell.Screen
	game     *game.Game
	clock    *game.TickClock
	keys     *KeyTracker
	renderer *Renderer
	watcher  *config.Watcher
	sound    Muter
	tick     time.Duration
	paused   bool
	muted    bool
	wall     game.Clock // 按键按住窗口使用的真实时间
}

// NewRunner 创建主循环
// screen 必须已经 Init
func NewRunner(screen tcell.Screen, g *game.Game, opts Options) *Runner {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	return &Runner{
		screen:   screen,
		game:     g,
		clock:    game.NewTickClock(config.TicksPerSecond),
		keys:     NewKeyTracker(opts.HoldWindow),
		renderer: NewRenderer(screen),
		watcher:  opts.Watcher,
		sound:    opts.Sound,
		tick:     opts.TickInterval,
		wall:     game.NewWallClock(),
	}
}

// Run 运行主循环，直到玩家退出或 ctx 被取消
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// screen 已 Fini
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var reloads <-chan string
	var watchErrs <-chan error
	if r.watcher != nil {
		reloads = r.watcher.Events
		watchErrs = r.watcher.Errors
	}

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !r.HandleEvent(ev) {
				log.Printf("[Terminal] 玩家退出")
				return nil
			}
		case <-ticker.C:
			r.Step()
		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			r.reloadTuning(path)
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			log.Printf("[Config] 监听错误: %v", err)
		}
	}
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a := classify(ev); a {
		case actionQuit:
			return false
		case actionPause:
			r.paused = !r.paused
			r.keys.Reset()
			log.Printf("[Terminal] 暂停: %v", r.paused)
			r.draw()
		case actionMute:
			if r.sound != nil {
				r.muted = !r.muted
				r.sound.SetMuted(r.muted)
				log.Printf("[Terminal] 静音: %v", r.muted)
			}
		case actionConfirm:
			if !r.paused {
				r.game.Confirm(r.clock.Now())
			}
		case actionNone:
		default:
			if !r.paused {
				r.keys.Press(a, r.wall.Now())
			}
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.draw()
	}
	return true
}

// Step 推进一帧并重绘，暂停时只重绘
func (r *Runner) Step() {
	if !r.paused {
		now := r.clock.Advance()
		r.game.Update(now, r.keys.State(r.wall.Now()))
	}
	r.draw()
}

func (r *Runner) draw() {
	r.renderer.Draw(r.game.Snapshot(), r.paused)
}

// Paused 是否处于暂停状态
func (r *Runner) Paused() bool {
	return r.paused
}

func (r *Runner) reloadTuning(path string) {
	t, err := config.LoadTuningFile(path)
	if err != nil {
		log.Printf("[Config] 热重载失败，继续使用旧配置: %v", err)
		return
	}
	if err := r.game.SetTuning(t); err != nil {
		log.Printf("[Config] 热重载失败，继续使用旧配置: %v", err)
		return
	}
	log.Printf("[Config] 已重新加载 %s", path)
}
