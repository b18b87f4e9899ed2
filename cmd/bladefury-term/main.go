// bladefury-term 在终端中运行游戏
//
// 用法:
//
//	bladefury-term [-config data/tuning.yaml] [-watch] [-seed N] [-level N] [-log file] [-mute]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/bladefury/internal/audio"
	"github.com/gonewx/bladefury/internal/terminal"
	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/event"
	"github.com/gonewx/bladefury/pkg/game"
)

var (
	configPath = flag.String("config", config.DefaultTuningPath, "调参文件路径")
	watch      = flag.Bool("watch", false, "监听调参文件变化并热重载")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	level      = flag.Int("level", 0, "起始关卡（调试用）")
	logFile    = flag.String("log", "", "日志文件路径（终端被游戏占用，默认丢弃日志）")
	mute       = flag.Bool("mute", false, "关闭音效")
	hold       = flag.Duration("hold", terminal.DefaultHoldWindow, "按键按住判定窗口")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bladefury-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := loadTuning(*configPath)
	if err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[Terminal] 随机种子: %d", s)

	events := event.NewDispatcher()
	var sound terminal.Muter
	if !*mute {
		sounds := audio.NewSoundPlayer()
		if err := sounds.Init(); err != nil {
			// 没有音频设备时静音运行
			log.Printf("[Audio] 音频初始化失败，静音运行: %v", err)
		} else {
			defer sounds.Close()
			events.SubscribeAll(sounds)
			sound = sounds
		}
	}

	g := game.NewGame(game.Options{
		Tuning:     tuning,
		Rand:       rand.New(rand.NewSource(s)),
		Events:     events,
		StartLevel: *level,
	})

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", *configPath, err)
		}
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := terminal.NewRunner(screen, g, terminal.Options{
		HoldWindow: *hold,
		Watcher:    watcher,
		Sound:      sound,
	})
	return runner.Run(ctx)
}

// loadTuning 读取调参文件
// 默认路径的文件不存在时（不在仓库目录下运行）使用内置默认值
func loadTuning(path string) (*config.Tuning, error) {
	t, err := config.LoadTuning(path)
	if err == nil {
		return t, nil
	}
	if path == config.DefaultTuningPath && errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s 不存在，使用默认配置", path)
		return config.DefaultTuning(), nil
	}
	return nil, err
}

// setupLog 把日志重定向到文件，path 为空时丢弃
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
